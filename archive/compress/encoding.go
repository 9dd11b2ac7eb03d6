package compress

import (
	"encoding/json"
	"fmt"
)

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("compress: unknown codec %q", text)
	}
	*a = v
	return nil
}

func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := Parse(s)
	if !ok {
		return fmt.Errorf("compress: unknown codec %q", s)
	}
	*a = v
	return nil
}
