package command

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Serve executes one command per input line and writes one JSON result per
// line. It stops at the end of input, when ctx is done or once the board is
// decided.
func (s *Session) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	enc := json.NewEncoder(out)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, _ := s.Execute(line)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		if s.Done() {
			return nil
		}
	}
	return scanner.Err()
}
