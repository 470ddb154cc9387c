package pkglog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/FirstLegoLeague/ms-logger/internal/pkg/pkgerror"
)

// Level is the severity of a log record. Higher values are more severe.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelNames is indexed by Level and must stay aligned with the constants above.
//
//nolint:gochecknoglobals // lookup table
var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

// NumLevels is the number of defined levels.
const NumLevels = len(levelNames)

const maxSafeInteger = 1<<53 - 1

var (
	// ErrLevelOutOfRange is returned for a numeric level outside [0, NumLevels-1].
	ErrLevelOutOfRange = errors.New("level not in range")
	// ErrUnknownLevel is returned for a level name that matches no level.
	ErrUnknownLevel = errors.New("unknown level name")
	// ErrLevelType is returned for a level value that is neither an integer nor a name.
	ErrLevelType = errors.New("level must be an integer or a level name")
)

// String returns the canonical lowercase name, or the decimal number for a
// level outside the known range.
func (l Level) String() string {
	if l >= 0 && int(l) < NumLevels {
		return levelNames[l]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= 0 && int(l) < NumLevels
}

// Levels returns every defined level in ascending severity.
func Levels() []Level {
	out := make([]Level, NumLevels)
	for i := range out {
		out[i] = Level(i)
	}
	return out
}

// ResolveLevel validates v and converts it into a Level.
//
// Integers (and integral float64 values, as decoded from JSON) must be within
// range. Strings must match a level name case-insensitively. Anything else is
// rejected. Every failure is a pkgerror configuration error.
func ResolveLevel(v any) (Level, error) {
	switch val := v.(type) {
	case Level:
		return levelFromInt(int64(val))
	case int:
		return levelFromInt(int64(val))
	case int8:
		return levelFromInt(int64(val))
	case int16:
		return levelFromInt(int64(val))
	case int32:
		return levelFromInt(int64(val))
	case int64:
		return levelFromInt(val)
	case uint:
		return levelFromUint(uint64(val))
	case uint8:
		return levelFromUint(uint64(val))
	case uint16:
		return levelFromUint(uint64(val))
	case uint32:
		return levelFromUint(uint64(val))
	case uint64:
		return levelFromUint(val)
	case float32:
		return levelFromFloat(float64(val))
	case float64:
		return levelFromFloat(val)
	case string:
		return levelFromName(val)
	default:
		return 0, pkgerror.NewConfig(fmt.Errorf("%w, got %T", ErrLevelType, v), pkgerror.CodeTypeMismatch)
	}
}

// ParseLevel parses a level from a configuration string. It accepts a level
// name or a decimal index.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return levelFromInt(n)
	}
	return levelFromName(s)
}

func levelFromInt(n int64) (Level, error) {
	if n < 0 || n >= int64(NumLevels) {
		return 0, pkgerror.NewConfig(fmt.Errorf("%w: %d", ErrLevelOutOfRange, n), pkgerror.CodeOutOfRange)
	}
	return Level(n), nil
}

func levelFromUint(n uint64) (Level, error) {
	if n >= uint64(NumLevels) {
		return 0, pkgerror.NewConfig(fmt.Errorf("%w: %d", ErrLevelOutOfRange, n), pkgerror.CodeOutOfRange)
	}
	return Level(n), nil
}

func levelFromFloat(f float64) (Level, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, pkgerror.NewConfig(fmt.Errorf("%w: %v", ErrLevelOutOfRange, f), pkgerror.CodeOutOfRange)
	}
	return levelFromInt(int64(f))
}

func levelFromName(name string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(l.String(), name) {
			return l, nil
		}
	}
	return 0, pkgerror.NewConfig(fmt.Errorf("%w: %q", ErrUnknownLevel, name), pkgerror.CodeUnknownName)
}
