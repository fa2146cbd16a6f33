package lifecycle

import (
	"github.com/arthur-debert/dotctl/pkg/status"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Status derives the state of every link of entry from the filesystem.
// A link whose paths cannot be resolved is reported in the error state.
func (o *Orchestrator) Status(entry types.ConfigSpec) status.EntryStatus {
	result := status.EntryStatus{Entry: entry.Name, Links: make([]*status.LinkStatus, 0, len(entry.Links))}

	for _, link := range entry.Links {
		source, srcErr := o.resolver.ResolveSource(link.Source, o.repository)
		target, tgtErr := o.resolver.ResolveTarget(link.Target)
		if err := firstErr(srcErr, tgtErr); err != nil {
			result.Links = append(result.Links, &status.LinkStatus{
				Source:  link.Source,
				Target:  link.Target,
				Mode:    link.Mode.String(),
				State:   status.StateError,
				Message: err.Error(),
			})
			continue
		}
		result.Links = append(result.Links, o.checker.Check(source, target, link.Mode))
	}
	return result
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
