// Package lifecycle sequences setup and teardown of configuration entries.
//
// Setup runs PRESETUP hooks, applies every link in declared order, then
// runs POSTSETUP hooks. Teardown mirrors it with PRETEARDOWN and
// POSTTEARDOWN around the link removals. The first failure aborts the
// entry and, in multi-entry runs, every entry after it. Links applied
// before a failure are left in place.
//
// Host state (platform, working directory, home lookup) is passed in
// through Environment rather than read from the process.
package lifecycle
