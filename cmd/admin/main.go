package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"pokermaster-server/internal/config"
	"pokermaster-server/pkg/bankroll"
)

var command = flag.String("c", "show", "specifies the command (create, show)")

func main() {
	flag.Parse()

	name := flag.Arg(0)
	if name == "" {
		var err error
		if name, err = getInput("Name"); err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}
	}

	if name == "" {
		os.Exit(1)
	}

	switch *command {
	case "create":
		cash := getCash()
		b, err := bankroll.Create(context.Background(), name, cash)
		if err != nil {
			logrus.WithError(err).Fatal("could not create bankroll")
		}

		fmt.Printf("Created bankroll %s for %s with $%d\n", b.UUID, b.Name, b.Cash)
	case "show":
		b, err := bankroll.GetByName(context.Background(), name)
		if errors.Is(err, bankroll.ErrNotFound) {
			_, _ = fmt.Fprintf(os.Stderr, "no bankroll for %s\n", name)
			os.Exit(1)
		} else if err != nil {
			logrus.WithError(err).Fatal("could not get bankroll")
		}

		fmt.Printf("%s: $%d (updated %s)\n", b.Name, b.Cash, b.Updated.Format("2006-01-02 15:04"))
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func getCash() int {
	startingCash := config.Instance().Table.StartingCash
	for {
		str, err := getInput(fmt.Sprintf("Cash (%d)", startingCash))
		if err != nil {
			logrus.WithError(err).Fatal("could not get answer")
		}

		if str == "" {
			return startingCash
		}

		cash, err := strconv.Atoi(str)
		if err != nil || cash < 0 {
			_, _ = fmt.Fprintln(os.Stderr, "cash must be a whole number >= 0")
			continue
		}

		return cash
	}
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}
