package cmdline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SplitAll tokenizes independent command lines in parallel.
//
// The result holds one token slice per line, in input order. At most limit
// lines are tokenized at once; limit <= 0 means no limit. Tokenizing never
// fails, so the only error is the context's, returned when ctx is done before
// every line has been tokenized.
//
// Example:
//
//	lines := []string{"get foo", "set foo \"a b\""}
//	tokens, err := cmdline.SplitAll(ctx, lines, 4)
func SplitAll(ctx context.Context, lines []string, limit int) ([][]string, error) {
	out := make([][]string, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Split(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
