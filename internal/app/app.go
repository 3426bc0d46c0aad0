package app

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"vnat/internal/digest"
	"vnat/internal/nat"
)

// ErrValueTooLarge is returned when a requested value exceeds
// Config.MaxValue or does not fit in a uint32.
var ErrValueTooLarge = errors.New("value too large")

// App builds and combines trees on behalf of the CLI.
type App struct {
	Config Config
	Log    *zap.Logger
}

// New returns an App. A nil logger is replaced by a no-op one.
func New(cfg Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{Config: cfg, Log: log}
}

// Build returns the canonical tree for n.
func (a *App) Build(n uint32) (nat.Nat, error) {
	if err := a.allow(uint64(n)); err != nil {
		return nat.Nat{}, err
	}
	tree := nat.FromUint32(n)
	if ce := a.Log.Check(zap.DebugLevel, "built tree"); ce != nil {
		ce.Write(
			zap.Uint32("value", n),
			zap.Uint64("nodes", tree.Size()),
			zap.String("fingerprint", digest.Fingerprint(tree)))
	}
	return tree, nil
}

// Add builds x and y and returns their trees together with the tree of
// their sum. The limit applies to the sum.
func (a *App) Add(x, y uint32) (tx, ty, sum nat.Nat, err error) {
	if err := a.allow(uint64(x) + uint64(y)); err != nil {
		return nat.Nat{}, nat.Nat{}, nat.Nat{}, err
	}
	tx, ty = nat.FromUint32(x), nat.FromUint32(y)
	sum = nat.Add(tx, ty)
	if ce := a.Log.Check(zap.DebugLevel, "added trees"); ce != nil {
		ce.Write(
			zap.Uint32("x", x),
			zap.Uint32("y", y),
			zap.Uint32("sum", sum.Uint32()),
			zap.Uint64("nodes", sum.Size()))
	}
	return tx, ty, sum, nil
}

// Parse reads a tree in set notation. The tree is not validated.
func (a *App) Parse(s string) (nat.Nat, error) {
	tree, err := nat.Parse(s)
	if err != nil {
		return nat.Nat{}, err
	}
	if ce := a.Log.Check(zap.DebugLevel, "parsed tree"); ce != nil {
		ce.Write(zap.Int("elements", tree.Len()), zap.Int("depth", tree.Depth()))
	}
	return tree, nil
}

// Check returns the validated value of tree. Malformed trees are logged at
// warn level.
func (a *App) Check(tree nat.Nat) (uint32, error) {
	v, err := tree.CheckedUint32()
	if err != nil {
		a.Log.Warn("rejected malformed tree", zap.Error(err))
		return 0, err
	}
	return v, nil
}

func (a *App) allow(v uint64) error {
	if v > math.MaxUint32 {
		return fmt.Errorf("%w: %d does not fit in 32 bits", ErrValueTooLarge, v)
	}
	if a.Config.MaxValue != 0 && v > uint64(a.Config.MaxValue) {
		return fmt.Errorf("%w: %d exceeds limit %d (use --force or --max)", ErrValueTooLarge, v, a.Config.MaxValue)
	}
	return nil
}
