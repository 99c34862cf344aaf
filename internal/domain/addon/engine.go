package addon

import (
	"errors"
	"fmt"
)

// EngineType is the scripting engine the addon script runs under.
type EngineType string

// Known engine types.
const (
	EngineRhino                    EngineType = "RHINO"
	EngineNashorn                  EngineType = "NASHORN"
	EngineGraalJSNashornCompatible EngineType = "GRAALJS_NASHORN_COMPATIBLE"
	EngineGraalJS                  EngineType = "GRAALJS"
)

// ErrUnknownEngineType is returned for engine-type values outside the known set.
var ErrUnknownEngineType = errors.New("unknown engine type")

//nolint:gochecknoglobals // Fixed lookup table.
var engineCodes = map[EngineType]int{
	EngineRhino:                    0,
	EngineNashorn:                  1,
	EngineGraalJSNashornCompatible: 2,
	EngineGraalJS:                  3,
}

// ParseEngineType validates s against the known engine names.
func ParseEngineType(s string) (EngineType, error) {
	engine := EngineType(s)
	if _, ok := engineCodes[engine]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEngineType, s)
	}

	return engine, nil
}

// Code returns the numeric code written into the definition.
func (e EngineType) Code() int {
	code, ok := engineCodes[e]
	if !ok {
		return -1
	}

	return code
}
