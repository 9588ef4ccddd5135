// Package console реализует строковый командный интерфейс адресной книги.
// Консоль читает команды построчно, вызывает операции usecase-слоя
// и печатает результат; любая ошибка выводится как текст
// и не прерывает цикл обработки команд.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avc-dev/address-book/internal/middleware"
	"github.com/avc-dev/address-book/internal/usecase"
	"go.uber.org/zap"
)

// Console - интерактивная консоль адресной книги
type Console struct {
	uc         *usecase.ContactUsecase
	in         io.Reader
	out        io.Writer
	handlers   map[string]middleware.Handler
	windowDays int
	now        func() time.Time
}

// New создает консоль поверх заданных потоков ввода-вывода
func New(uc *usecase.ContactUsecase, logger *zap.Logger, in io.Reader, out io.Writer, windowDays int) *Console {
	c := &Console{
		uc:         uc,
		in:         in,
		out:        out,
		windowDays: windowDays,
		now:        time.Now,
	}

	logged := middleware.Logger(logger)

	c.handlers = map[string]middleware.Handler{
		"hello":         logged("hello", c.handleHello),
		"help":          logged("help", c.handleHelp),
		"add":           logged("add", c.handleAdd),
		"change":        logged("change", c.handleChange),
		"phone":         logged("phone", c.handlePhone),
		"find":          logged("find", c.handleFind),
		"delete":        logged("delete", c.handleDelete),
		"all":           logged("all", c.handleAll),
		"add-birthday":  logged("add-birthday", c.handleAddBirthday),
		"show-birthday": logged("show-birthday", c.handleShowBirthday),
		"birthdays":     logged("birthdays", c.handleBirthdays),
	}

	return c
}

// Run запускает цикл обработки команд до команды exit/close
// или конца потока ввода
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "Enter a command: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		command, args := parseInput(scanner.Text())

		if command == "" {
			continue
		}

		if command == "exit" || command == "close" {
			fmt.Fprintln(c.out, "Good bye!")
			return nil
		}

		handler, ok := c.handlers[command]
		if !ok {
			fmt.Fprintln(c.out, "Invalid command. Please try again.")
			continue
		}

		output, err := handler(args)
		if err != nil {
			fmt.Fprintln(c.out, errorMessage(err))
			continue
		}

		fmt.Fprintln(c.out, output)
	}
}

// parseInput разбирает строку на команду и строку аргументов.
// Команда регистронезависима, аргументы передаются как есть.
func parseInput(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	parts := strings.SplitN(line, " ", 2)
	command := strings.ToLower(parts[0])

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return command, args
}
