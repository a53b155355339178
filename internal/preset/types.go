// types.go
package preset

// Raw preset loaded from YAML. Pointer fields distinguish "absent" from
// an explicit zero so merging can tell which file set what.
type RawPreset struct {
	Version string   `yaml:"version"`
	Board   BoardCfg `yaml:"board"`
	Sim     *SimCfg  `yaml:"sim,omitempty"`
	Notes   string   `yaml:"notes,omitempty"`
}

type BoardCfg struct {
	Doors  *int `yaml:"doors"`
	Prizes *int `yaml:"prizes"`
}

type SimCfg struct {
	Trials    *int `yaml:"trials"`
	DelayMS   *int `yaml:"delay_ms,omitempty"`
	TraceSize *int `yaml:"trace_size,omitempty"`
}
