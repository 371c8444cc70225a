package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mitienda/pos-terminal/internal/auth"
	"github.com/mitienda/pos-terminal/internal/common"
	"github.com/mitienda/pos-terminal/internal/ledger"
	"github.com/mitienda/pos-terminal/internal/shop"
)

// Terminal drives one interactive session: the employee login loop followed by
// the main menu. Every operation validates its input before touching the shop
// and returns to the menu whatever the outcome.
type Terminal struct {
	In        io.Reader
	Out       io.Writer
	Shop      *shop.Shop
	Auth      *auth.Service
	Validator *validator.Validate
	Logger    zerolog.Logger
	ExportDir string

	scanner *bufio.Scanner
}

// ProductInput is the validated console input for creating a product.
type ProductInput struct {
	Name           string  `validate:"required"`
	WholesalePrice float64 `validate:"gt=0"`
	Stock          int     `validate:"gte=0"`
}

// StockInput is the validated console input for restocking a product.
type StockInput struct {
	Name     string `validate:"required"`
	Quantity int    `validate:"gt=0"`
}

// Run executes the session until the employee exits or the input closes.
func (t *Terminal) Run(ctx context.Context) error {
	t.scanner = bufio.NewScanner(t.In)

	if err := t.login(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for {
		t.printMenu()
		line, err := t.readLine("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			t.printf("The option must be a number\n")
			continue
		}

		var opErr error
		switch choice {
		case 1:
			t.showCash()
		case 2:
			opErr = t.addProduct(ctx)
		case 3:
			opErr = t.addStock(ctx)
		case 4:
			opErr = t.markdown(ctx)
		case 5:
			t.showInventory()
		case 6:
			opErr = t.sale(ctx)
		case 7:
			opErr = t.showSales()
		case 8:
			t.showTotalSales()
		case 9:
			opErr = t.removeProduct(ctx)
		case 10:
			t.printf("Closing terminal...\n")
			return nil
		default:
			t.printf("Unknown option\n")
		}
		if errors.Is(opErr, io.EOF) {
			return nil
		}
	}
}

func (t *Terminal) printMenu() {
	t.printf("\n===========================\n")
	t.printf("Shop terminal — main menu\n")
	t.printf("===========================\n")
	t.printf("1) Count cash\n")
	t.printf("2) Add product\n")
	t.printf("3) Add stock\n")
	t.printf("4) Mark product near expiry\n")
	t.printf("5) Show inventory\n")
	t.printf("6) Sale\n")
	t.printf("7) Show sales\n")
	t.printf("8) Show total sales\n")
	t.printf("9) Remove product\n")
	t.printf("10) Exit\n")
}

// login repeats until the credentials check out or the input closes.
func (t *Terminal) login(ctx context.Context) error {
	for {
		idRaw, err := t.readLine("Employee id: ")
		if err != nil {
			return err
		}
		secret, err := t.readLine("Password: ")
		if err != nil {
			return err
		}
		id, convErr := strconv.Atoi(strings.TrimSpace(idRaw))
		if convErr != nil {
			t.printf("The employee id must be a number\n")
			continue
		}
		emp, ok, err := t.Auth.Authenticate(ctx, id, secret)
		if err != nil {
			t.printf("Login failed: %v\n", err)
			continue
		}
		if !ok {
			t.printf("Wrong employee id or password\n")
			continue
		}
		t.printf("Login correct, welcome %s\n", emp.Name)
		return nil
	}
}

func (t *Terminal) showCash() {
	t.printf("Current cash: %s\n", t.Shop.Cash())
}

func (t *Terminal) addProduct(ctx context.Context) error {
	name, err := t.readLine("Name: ")
	if err != nil {
		return err
	}
	wholesale, err := t.readFloat("Wholesale price: ")
	if err != nil {
		return err
	}
	stock, err := t.readIntValue("Stock: ")
	if err != nil {
		return err
	}

	in := ProductInput{Name: strings.TrimSpace(name), WholesalePrice: wholesale, Stock: stock}
	if err := t.Validator.Struct(in); err != nil {
		t.printf("Invalid product: %v\n", err)
		return nil
	}

	p, err := t.Shop.AddProduct(ctx, in.Name, in.WholesalePrice, true, in.Stock)
	if err != nil {
		t.report(err)
		return nil
	}
	t.printf("Product added: %s\n", p)
	return nil
}

func (t *Terminal) addStock(ctx context.Context) error {
	name, err := t.readLine("Product name: ")
	if err != nil {
		return err
	}
	quantity, err := t.readIntValue("Quantity to add: ")
	if err != nil {
		return err
	}

	in := StockInput{Name: strings.TrimSpace(name), Quantity: quantity}
	if err := t.Validator.Struct(in); err != nil {
		t.printf("Invalid stock entry: %v\n", err)
		return nil
	}

	p, err := t.Shop.AddStock(ctx, in.Name, in.Quantity)
	if err != nil {
		t.report(err)
		return nil
	}
	t.printf("Stock of %s updated to %d\n", p.Name, p.Stock)
	return nil
}

func (t *Terminal) markdown(ctx context.Context) error {
	name, err := t.readLine("Product name: ")
	if err != nil {
		return err
	}
	p, err := t.Shop.Markdown(ctx, strings.TrimSpace(name))
	if err != nil {
		t.report(err)
		return nil
	}
	t.printf("Price of %s updated to %s\n", p.Name, p.PublicPrice)
	return nil
}

func (t *Terminal) showInventory() {
	t.printf("Current shop contents:\n")
	for _, p := range t.Shop.Products() {
		t.printf("%s\n", p)
	}
}

func (t *Terminal) sale(ctx context.Context) error {
	clientName, err := t.readLine("Client name: ")
	if err != nil {
		return err
	}
	funds, err := t.readFloat("Client funds: ")
	if err != nil {
		return err
	}

	client := ledger.NewClient(strings.TrimSpace(clientName), funds, t.Shop.Cash().Currency)
	co := t.Shop.BeginCheckout(client)

	for co.State() == shop.StateCollectingItems {
		name, err := t.readLine("Product name (0 to finish): ")
		if err != nil {
			return err
		}
		scanErr := co.Scan(ctx, strings.TrimSpace(name))
		switch {
		case scanErr == nil:
			if co.State() == shop.StateCollectingItems {
				t.printf("Product added to cart\n")
			}
		case common.CodeOf(scanErr) == common.CodeNotFound:
			t.printf("Product not found or unavailable\n")
		default:
			t.report(scanErr)
		}
	}

	res, err := co.Finalize()
	if err != nil {
		t.report(err)
		return nil
	}
	t.printf("Sale completed, total: %s\n", res.Sale.Total)
	if !res.Paid {
		t.printf("Client owes: %s\n", res.Outstanding)
	}
	return nil
}

func (t *Terminal) showSales() error {
	t.printf("Sales list:\n")
	for _, sale := range t.Shop.Sales() {
		t.printf("%s\n", sale)
	}
	answer, err := t.readLine("Export sales file? [y/N]: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "y") {
		path, err := t.Shop.ExportSales(t.ExportDir)
		if err != nil {
			t.report(err)
			return nil
		}
		t.printf("Sales exported to %s\n", path)
	}
	return nil
}

func (t *Terminal) showTotalSales() {
	t.printf("Total sales amount: %s\n", t.Shop.TotalSales())
}

func (t *Terminal) removeProduct(ctx context.Context) error {
	if t.Shop.ProductCount() == 0 {
		t.printf("Nothing to remove, the inventory is empty\n")
		return nil
	}
	name, err := t.readLine("Product name: ")
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(name)
	p, ok := t.Shop.FindProduct(trimmed)
	if !ok {
		t.printf("Product not found\n")
		return nil
	}
	if err := t.Shop.Remove(ctx, p.ID); err != nil {
		t.report(err)
		return nil
	}
	t.printf("Product %s removed\n", trimmed)
	return nil
}

// report prints a failed operation according to its classification. A
// persistence failure means the store may now lag the in-memory state, so it
// is both shown and logged.
func (t *Terminal) report(err error) {
	switch common.CodeOf(err) {
	case common.CodePersistence:
		t.Logger.Error().Err(err).Msg("persistence failure")
		t.printf("Warning: the change was not persisted: %v\n", err)
	case common.CodeNotFound:
		t.printf("Product not found\n")
	default:
		t.printf("Error: %v\n", err)
	}
}

func (t *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.Out, format, args...)
}

func (t *Terminal) readLine(prompt string) (string, error) {
	t.printf("%s", prompt)
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return t.scanner.Text(), nil
}

// readFloat parses a numeric entry; the empty string counts as zero.
func (t *Terminal) readFloat(prompt string) (float64, error) {
	line, err := t.readLine(prompt)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, nil
	}
	f, convErr := strconv.ParseFloat(trimmed, 64)
	if convErr != nil {
		t.printf("Not a number, using 0\n")
		return 0, nil
	}
	return f, nil
}

func (t *Terminal) readIntValue(prompt string) (int, error) {
	line, err := t.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		t.printf("Not a number, using 0\n")
		return 0, nil
	}
	return n, nil
}
