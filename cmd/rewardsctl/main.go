// Command rewardsctl manages data-sharing consent and submissions from a terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rewardsv1 "github.com/dtroode/rewards-server/api/rewards/v1"
	"github.com/dtroode/rewards-server/internal/client/controller"
	"github.com/dtroode/rewards-server/internal/client/rewards"
	"github.com/dtroode/rewards-server/internal/config"
	"github.com/dtroode/rewards-server/internal/logger"
)

const usage = `usage: rewardsctl <command> [flags]

commands:
  status                      show consent state and reward points
  consent on|off [-yes]       grant or withdraw consent
  submit -amount A -category C [-city X] [-item desc:qty:unit:total]...
  points                      show reward points
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	cfg, err := config.NewClientConfig()
	if err != nil {
		return err
	}

	client, err := rewards.Dial(cfg.Address, cfg.Token, cfg.UseTLS)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, "text")

	switch args[0] {
	case "status":
		return showStatus(ctx, newController(client, in, out, cfg.AssumeYes, log), out)
	case "consent":
		return consent(ctx, client, args[1:], in, out, cfg.AssumeYes, log)
	case "submit":
		return submit(ctx, client, args[1:], out)
	case "points":
		points, err := client.Points(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "points: %d\n", points)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newController(client *rewards.Client, in io.Reader, out io.Writer, assumeYes bool, log *logger.Logger) *controller.Controller {
	return controller.New(client, client, &promptConfirmer{in: in, out: out, assumeYes: assumeYes}, &printNotifier{out: out}, log)
}

func showStatus(ctx context.Context, ctrl *controller.Controller, out io.Writer) error {
	if err := ctrl.Refresh(ctx); err != nil {
		return err
	}
	printState(out, ctrl.State())
	return nil
}

func consent(ctx context.Context, client *rewards.Client, args []string, in io.Reader, out io.Writer, assumeYes bool, log *logger.Logger) error {
	fs := flag.NewFlagSet("consent", flag.ContinueOnError)
	fs.SetOutput(out)
	yes := fs.Bool("yes", assumeYes, "withdraw without asking for confirmation")
	if len(args) == 0 {
		return errors.New("consent requires on or off")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var given bool
	switch args[0] {
	case "on":
		given = true
	case "off":
	default:
		return fmt.Errorf("consent requires on or off, got %q", args[0])
	}

	ctrl := newController(client, in, out, *yes, log)
	if err := ctrl.Refresh(ctx); err != nil {
		return err
	}
	if err := ctrl.SetConsent(ctx, given); err != nil {
		if errors.Is(err, controller.ErrWithdrawalDeclined) {
			fmt.Fprintln(out, "withdrawal cancelled")
			return nil
		}
		return err
	}
	printState(out, ctrl.State())
	return nil
}

type itemFlags []*rewardsv1.LineItem

func (f *itemFlags) String() string {
	return fmt.Sprintf("%d items", len(*f))
}

// Set parses description:quantity:unit_price:total. Trailing parts are optional.
func (f *itemFlags) Set(v string) error {
	parts := strings.Split(v, ":")
	if parts[0] == "" {
		return errors.New("item description is required")
	}
	item := &rewardsv1.LineItem{Description: parts[0]}
	if len(parts) > 1 {
		item.Quantity = parts[1]
	}
	if len(parts) > 2 {
		item.UnitPrice = parts[2]
	}
	if len(parts) > 3 {
		item.Total = parts[3]
	}
	*f = append(*f, item)
	return nil
}

func submit(ctx context.Context, client *rewards.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	fs.SetOutput(out)
	amount := fs.String("amount", "", "transaction total, e.g. 42.10")
	category := fs.String("category", "", "spending category")
	city := fs.String("city", "", "city of purchase")
	var items itemFlags
	fs.Var(&items, "item", "line item as description:quantity:unit_price:total (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.Submit(ctx, &rewardsv1.SubmitDataRequest{
		Amount:    *amount,
		Category:  *category,
		City:      *city,
		Inventory: items,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		fmt.Fprintf(out, "not recorded: %s\n", resp.Reason)
		return nil
	}
	fmt.Fprintf(out, "recorded, +%d points\n", resp.PointsEarned)
	return nil
}

func printState(out io.Writer, st controller.State) {
	given, ok := st.ConsentGiven()
	switch {
	case !ok:
		fmt.Fprintln(out, "consent: unknown")
		return
	case given:
		fmt.Fprintln(out, "consent: granted")
	default:
		fmt.Fprintln(out, "consent: not granted")
	}
	if st.Server.ConsentDate != nil {
		fmt.Fprintf(out, "since: %s\n", st.Server.ConsentDate.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "points: %d\n", st.Server.RewardPoints)
}

type promptConfirmer struct {
	in        io.Reader
	out       io.Writer
	assumeYes bool
}

func (c *promptConfirmer) ConfirmWithdrawal(_ context.Context) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	fmt.Fprint(c.out, "Withdrawing deletes all data you have shared. Continue? [y/N] ")
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) NotifyFailure(err error) {
	fmt.Fprintf(n.out, "could not save your choice, showing the last saved state: %s\n", describe(err))
}

// describe turns gRPC status errors into short messages.
func describe(err error) string {
	if errors.Is(err, controller.ErrNotAuthenticated) {
		return "sign in first (set REWARDSCTL_TOKEN)"
	}
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return "session expired or invalid, sign in again"
	case codes.Unavailable:
		return "service unavailable, try again later"
	case codes.ResourceExhausted:
		return "too many submissions, try again later"
	default:
		return st.Message()
	}
}
