package x11

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/darkawower/wallcycle/internal/platform"
)

// XrandrCommand is the display enumeration tool.
const XrandrCommand = "xrandr"

// ScreenService implements platform.ScreenService using xrandr.
type ScreenService struct {
	runner platform.Runner
}

// NewScreenService creates a new xrandr screen service.
func NewScreenService(r platform.Runner) *ScreenService {
	return &ScreenService{runner: r}
}

// Count returns the number of outputs xrandr reports as connected.
func (s *ScreenService) Count(ctx context.Context) (int, error) {
	output, err := s.runner.Run(ctx, XrandrCommand, "--query")
	if err != nil {
		return 0, fmt.Errorf("failed to query screens: %w", err)
	}
	return CountConnected(output), nil
}

// CountConnected counts output lines of the form "<name> connected ...".
// "disconnected" outputs are not counted.
func CountConnected(output []byte) int {
	count := 0
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[1] == "connected" {
			count++
		}
	}
	return count
}
