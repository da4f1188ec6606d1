package console

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mnk-game/internal/apperror"
	"github.com/rocketscienceinc/mnk-game/internal/entity"
)

// ParseMove reads "x y". Fractional coordinates are truncated toward zero.
func ParseMove(input string) (entity.Point, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return entity.Point{}, apperror.ErrEmptyInput
	}

	if len(fields) != 2 {
		return entity.Point{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, input)
	}

	var coords [2]int
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return entity.Point{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, input)
		}

		coords[i] = int(value)
	}

	return entity.NewPoint(coords[0], coords[1]), nil
}

// ParseDimension reads a board dimension. A blank input keeps fallback.
func ParseDimension(input string, fallback int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidDimension, input)
	}

	return value, nil
}

func isYes(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "yes")
}
