package usecase

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

const bannerWidth = 72

func (that *GameManager) printRules(startValue int) {
	rule := strings.Repeat("*", bannerWidth)

	that.printf("\nWelcome to DIVIDE BY HALF\n%s\n", rule)
	that.printf("Rules:\n")
	that.printf("1. The game starts from a fixed number (%d)\n", startValue)
	that.printf("2. Players take turns dividing the current number by %s (the result is always rounded down)\n", divisorList())
	that.printf("3. The player who has to move when the number is 1 loses the game\n")
	that.printf("4. A player whose divisor brings the number down to 0 loses\n")
	that.printf("5. The game goes on until one player leaves the other without a valid move\n")
	that.printf("%s\n\n", rule)
}

// printHistoryTable - one row per turn, columns aligned with a tabwriter.
func (that *GameManager) printHistoryTable(history []entity.HistoryRecord) {
	table := tabwriter.NewWriter(that.out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(table, "Player\tDivisor\tValue before\tValue after\t")
	for _, record := range history {
		_, _ = fmt.Fprintf(table, "%s\t%d\t%d\t%d\t\n",
			that.playerName(record.Player), record.Divisor, record.ValueBefore, record.ValueAfter)
	}

	_ = table.Flush()
}

func (that *GameManager) playerName(seat entity.Player) string {
	if player, ok := that.players[seat]; ok && player != nil {
		return player.Name()
	}
	return seat.String()
}

func divisorList() string {
	parts := make([]string, len(entity.Divisors))
	for i, divisor := range entity.Divisors {
		parts[i] = fmt.Sprint(divisor)
	}

	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
