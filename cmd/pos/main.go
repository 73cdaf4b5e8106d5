// Command pos is the counter terminal for walk-in orders. The pending
// selection lives in a local cart store so an accidental restart loses
// nothing; checkout submits the lines to the server, which prices them
// from the catalog and completes the order immediately.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gloryland/cart"
)

type checkoutLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type orderHeader struct {
	OrderID    string  `json:"order_id"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}

var errUsage = errors.New("bad usage")

func main() {
	server := flag.String("server", "http://localhost:8000", "gloryland server base URL")
	dataDir := flag.String("data", defaultDataDir(), "local state directory")
	flag.Parse()

	storage, err := cart.NewPebbleStorage(*dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	store, err := cart.NewStore(storage, terminalNotifier{})
	if err != nil {
		log.Fatal(err)
	}

	if err := run(store, *server, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		log.Fatal(err)
	}
}

func run(store *cart.Store, server string, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return errUsage
		}
		price := 0.0
		if len(args) > 3 {
			p, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("bad price %q", args[3])
			}
			price = p
		}
		store.AddItem(cart.Line{ItemID: args[1], Name: args[2], Price: price})
	case "remove":
		if len(args) < 2 {
			return errUsage
		}
		store.RemoveItem(args[1])
	case "qty":
		if len(args) < 3 {
			return errUsage
		}
		quantity, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[2])
		}
		store.UpdateQuantity(args[1], quantity)
	case "list":
		printLines(store.Lines())
	case "clear":
		store.Clear()
	case "checkout":
		return submit(server, store)
	default:
		return errUsage
	}
	return nil
}

func submit(server string, store *cart.Store) error {
	lines := store.Lines()
	if len(lines) == 0 {
		return fmt.Errorf("cart is empty")
	}

	payload := make([]checkoutLine, 0, len(lines))
	for _, line := range lines {
		payload = append(payload, checkoutLine{ID: line.ItemID, Quantity: line.Quantity})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, server+"/pos-order", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", os.Getenv("GLORYLAND_TOKEN"))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return fmt.Errorf("checkout failed (%d): %s", resp.StatusCode, failure.Error)
	}

	var order orderHeader
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return err
	}

	// Only a committed order clears the local cart.
	store.Clear()
	fmt.Printf("order %s %s, total $%.2f\n", order.OrderID, order.Status, order.TotalPrice)
	return nil
}

func printLines(lines []cart.Line) {
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, line := range lines {
		fmt.Printf("%-24s x%-3d %s\n", line.Name, line.Quantity, line.ItemID)
	}
}

type terminalNotifier struct{}

func (terminalNotifier) Success(msg string) { fmt.Println(msg) }
func (terminalNotifier) Error(msg string)   { fmt.Println(msg) }

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gloryland-pos"
	}
	return filepath.Join(home, ".gloryland-pos")
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pos [flags] <command>

commands:
  add <itemID> <name> [displayPrice]
  remove <itemID>
  qty <itemID> <n>
  list
  clear
  checkout`)
	os.Exit(2)
}
