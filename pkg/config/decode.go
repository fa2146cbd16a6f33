package config

import (
	"reflect"

	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/go-viper/mapstructure/v2"
)

var (
	linkModeType     = reflect.TypeOf(types.LinkMode(""))
	hookPhaseType    = reflect.TypeOf(types.HookPhase(""))
	systemNameType   = reflect.TypeOf(types.SystemName(""))
	configStatusType = reflect.TypeOf(types.ConfigStatus(""))
)

// enumHookFunc decodes the document's enum spellings case-insensitively
// into their canonical constants
func enumHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		s := reflect.ValueOf(data).String()

		switch t {
		case linkModeType:
			mode, err := types.ParseLinkMode(s)
			return mode, err
		case hookPhaseType:
			phase, err := types.ParseHookPhase(s)
			return phase, err
		case systemNameType:
			name, err := types.ParseSystemName(s)
			return name, err
		case configStatusType:
			status, err := types.ParseConfigStatus(s)
			return status, err
		}
		return data, nil
	}
}
