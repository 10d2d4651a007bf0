package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contracts/pkg/contract"
	"github.com/dmitrymomot/contracts/pkg/logger"
	"github.com/dmitrymomot/contracts/pkg/registry"
)

var (
	// ErrCheckFailed is returned when a value violates the contract.
	ErrCheckFailed = errors.New("contract check failed")

	// ErrNonFinite is returned when --as float is given NaN or an infinity.
	ErrNonFinite = errors.New("not a finite number")
)

// Value kinds accepted by --as.
const (
	AsAuto   = "auto"
	AsInt    = "int"
	AsFloat  = "float"
	AsString = "string"
)

// CheckResult is the outcome for one value.
type CheckResult struct {
	Value      any    `json:"value"`
	Valid      bool   `json:"valid"`
	Constraint string `json:"constraint,omitempty"`
	Error      string `json:"error,omitempty"`
}

type checkOptions struct {
	as     string
	method string
	param  string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <contract> <value>...",
		Short: "Check values against a contract",
		Long: `Check each value against the named contract. Values are parsed as
integers, then floats, and otherwise kept as strings unless --as says
otherwise. Checking stops at the first violation.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd.OutOrStdout(), args[0], args[1:])
		},
	}

	cmd.Flags().StringVar(&opts.as, "as", AsAuto, "value kind (auto|int|float|string)")
	cmd.Flags().StringVar(&opts.method, "method", "contracts", "method name used in messages")
	cmd.Flags().StringVar(&opts.param, "param", "value", "parameter name used in messages")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *checkOptions, out io.Writer, name string, raw []string) error {
	v, ok := rootOpts.registry.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", registry.ErrUnknownContract, name)
	}

	results := make([]CheckResult, 0, len(raw))
	var failure error
	for _, s := range raw {
		value, err := parseValue(s, opts.as)
		if err != nil {
			return err
		}

		res := CheckResult{Value: value, Valid: true}
		if err := v.Check(opts.method, opts.param, value); err != nil {
			res.Valid = false
			res.Error = err.Error()
			if violation, ok := contract.AsViolation(err); ok {
				res.Constraint = violation.Constraint
			}
			rootOpts.Logger().Debug("value rejected",
				logger.Group("check",
					logger.Contract(name),
					logger.Value(value),
					slog.String("constraint", res.Constraint),
				),
				logger.Error(err),
			)
			failure = err
		}
		results = append(results, res)
		if failure != nil {
			break
		}
	}

	if err := writeResults(out, rootOpts.Format, results); err != nil {
		return err
	}
	if failure != nil {
		return errors.Join(ErrCheckFailed, failure)
	}
	return nil
}

// parseValue never yields NaN or infinities: they have no JSON encoding.
// Auto mode keeps such input as a string.
func parseValue(s, as string) (any, error) {
	switch as {
	case AsString:
		return s, nil
	case AsInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q: %w", s, err)
		}
		return n, nil
	case AsFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q: %w", s, err)
		}
		if !isFinite(f) {
			return nil, fmt.Errorf("invalid float value %q: %w", s, ErrNonFinite)
		}
		return f, nil
	case AsAuto:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
			return f, nil
		}
		return s, nil
	}
	return nil, fmt.Errorf("invalid value kind %q: must be one of auto, int, float, string", as)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func writeResults(out io.Writer, format string, results []CheckResult) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"results": results})
	}
	for _, r := range results {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(out, "ok   %v\n", r.Value)
		} else {
			_, err = fmt.Fprintf(out, "FAIL %s\n", r.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
