package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/automata/internal/samples"
	"github.com/aretw0/automata/internal/validator"
)

// RunValidate reports the shape of the named samples, or of all of them
// when names is empty. It fails if any sample is invalid.
func RunValidate(out io.Writer, names []string) error {
	if len(names) == 0 {
		names = samples.Names()
	}

	failed := 0
	for _, name := range names {
		sample, err := samples.Lookup(name)
		if err != nil {
			return err
		}
		machine, err := sample.Build()
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", name, err)
		}

		r := validator.Analyze[int, rune](machine)
		fmt.Fprintf(out, "%s: %d states reachable, dead %v, %d missing transitions\n",
			name, len(r.Reachable), r.Dead, r.Missing)
		if err := validator.Validate[int, rune](machine); err != nil {
			failed++
			printSystemMessage(out, "%s is invalid: %v", name, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d automata are invalid", failed, len(names))
	}
	return nil
}
