package lint

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeOptions decodes rule options into a typed struct.
// Fields use `mapstructure` tags with the camelCase option names.
// Unknown keys are an error so typos surface instead of being ignored.
func DecodeOptions[T any](opts map[string]any, out *T) error {
	if len(opts) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("invalid rule options: %w", err)
	}
	return nil
}

// OptionsValidator returns a RuleDef.ValidateOptions that decodes the
// options into T and then runs check, if any.
func OptionsValidator[T any](check func(T) error) func(map[string]any) error {
	return func(opts map[string]any) error {
		var v T
		if err := DecodeOptions(opts, &v); err != nil {
			return err
		}
		if check == nil {
			return nil
		}
		return check(v)
	}
}
