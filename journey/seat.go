package journey

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultSeat is assigned when a passenger boards without choosing.
const DefaultSeat = "1A"

var (
	seatRows    = 3
	seatColumns = []string{"A", "B", "C", "D"}
)

// Seats returns every seat in the carriage in row order.
func Seats() []string {
	seats := make([]string, 0, seatRows*len(seatColumns))

	for row := 1; row <= seatRows; row++ {
		for _, col := range seatColumns {
			seats = append(seats, strconv.Itoa(row)+col)
		}
	}

	return seats
}

// NormaliseSeat upper-cases a seat and reports whether it exists.
func NormaliseSeat(seat string) (string, bool) {
	seat = strings.ToUpper(strings.TrimSpace(seat))
	if seat == "" {
		return DefaultSeat, true
	}

	return seat, slices.Contains(Seats(), seat)
}
