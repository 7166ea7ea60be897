package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rocketscienceinc/dividebyhalf/internal/apperror"
	"github.com/rocketscienceinc/dividebyhalf/internal/divide"
	"github.com/rocketscienceinc/dividebyhalf/internal/entity"
)

// LineReader scans input on its own goroutine so a cancelled context ends a prompt
// even while the terminal is silent. Human players sharing a terminal share one reader.
type LineReader struct {
	in io.Reader

	once  sync.Once
	lines chan string
	err   error
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{in: in}
}

// ReadLine - returns the next line without its terminator, or ErrInputClosed at EOF.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(that.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if ok {
			return line, nil
		}

		if that.err != nil {
			return "", fmt.Errorf("failed to read input: %w", that.err)
		}
		return "", apperror.ErrInputClosed
	}
}

func (that *LineReader) start() {
	that.lines = make(chan string)

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			that.lines <- scanner.Text()
		}
		that.err = scanner.Err()
	}()
}

type HumanPlayer struct {
	name  string
	input *LineReader
	out   io.Writer
}

func NewHumanPlayer(name string, input *LineReader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		name:  name,
		input: input,
		out:   out,
	}
}

func (that *HumanPlayer) Name() string {
	return that.name
}

// ChooseMove - prompts until a valid divisor is entered. Invalid lines never reach the game.
func (that *HumanPlayer) ChooseMove(ctx context.Context, _ entity.State) (int, error) {
	that.printf("Possible divisors: %v\n", entity.Divisors)

	for {
		that.printf("Choose a divisor: ")

		line, err := that.input.ReadLine(ctx)
		if err != nil {
			return 0, err
		}

		divisor, err := divide.ParseDivisor(line)
		if err != nil {
			that.printf("Error: %s is not a valid divisor.\n", line)
			that.printf("Possible divisors: %v\n", entity.Divisors)
			continue
		}

		return divisor, nil
	}
}

func (that *HumanPlayer) printf(format string, args ...any) {
	// the dialogue is best effort, a broken terminal surfaces as closed input
	_, _ = fmt.Fprintf(that.out, format, args...)
}
