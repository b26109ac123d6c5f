// check-balances: queries every recorded token deployment for its total
// supply and the wrapped balance of each configured wallet, in parallel, and
// prints a summary table.
//
// Run from the module root:
//
//	go run ./scripts/check-balances [config-dir]
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Karotoka/ERC-7521/internal/chain"
	"github.com/Karotoka/ERC-7521/internal/config"
	"github.com/Karotoka/ERC-7521/internal/contract"
	"github.com/Karotoka/ERC-7521/internal/ui"
	"github.com/Karotoka/ERC-7521/internal/wallet"
	"github.com/Karotoka/ERC-7521/internal/wrappers"
	"github.com/ethereum/go-ethereum/common"
)

const rpcTimeout = 12 * time.Second

// ── types ─────────────────────────────────────────────────────────────────────

type result struct {
	token   string // name@network
	wallet  string
	address string // short form
	balance string
	err     string
}

// ── main ──────────────────────────────────────────────────────────────────────

func main() {
	dir := ""
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	reg, err := contract.Open(cfg.ContractsPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	wallets, err := wallet.NewManager(wallet.WithStore(wallet.NewJSONStore(cfg.WalletsPath()))).List()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for _, e := range reg.All() {
		wg.Add(1)
		go func(e *contract.Entry) {
			defer wg.Done()
			rs := queryDeployment(cfg.ResolveRPC(e.Network), e, wallets)
			mu.Lock()
			results = append(results, rs...)
			mu.Unlock()
		}(e)
	}

	wg.Wait()

	printTable(results)
}

// queryDeployment reads the supply row and one row per wallet.
func queryDeployment(rpcURL string, e *contract.Entry, wallets []*wallet.Wallet) []result {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()

	label := e.Name + "@" + e.Network
	fail := func(err error) []result {
		return []result{{token: label, wallet: "(supply)", balance: "—", err: shortErr(err)}}
	}

	client, err := chain.DialReadOnly(ctx, rpcURL, common.Address{})
	if err != nil {
		return fail(err)
	}
	defer client.Close()
	if client.ChainID().Uint64() != e.ChainID {
		return fail(fmt.Errorf("chain id %s, recorded %d", client.ChainID(), e.ChainID))
	}
	token, err := wrappers.Bind(e.CommonAddress(), client)
	if err != nil {
		return fail(err)
	}

	supply, err := token.TotalSupply(ctx)
	if err != nil {
		return fail(err)
	}
	out := []result{{token: label, wallet: "(supply)", address: ui.TruncateAddr(e.Address), balance: ui.FormatUnits(supply, 18)}}

	for _, w := range wallets {
		r := result{token: label, wallet: w.Name, address: ui.TruncateAddr(w.Address)}
		bal, err := token.BalanceOf(ctx, w.CommonAddress())
		if err != nil {
			r.balance = "—"
			r.err = shortErr(err)
		} else {
			r.balance = ui.FormatUnits(bal, 18)
		}
		out = append(out, r)
	}
	return out
}

// ── output ────────────────────────────────────────────────────────────────────

func printTable(results []result) {
	// Sort by token → supply row first → wallet.
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.token != b.token {
			return a.token < b.token
		}
		return a.wallet < b.wallet
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "TOKEN\tWALLET\tADDRESS\tBALANCE\tNOTE")
	fmt.Fprintln(w, strings.Repeat("-", 16)+"\t"+
		strings.Repeat("-", 10)+"\t"+
		strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 24)+"\t"+
		strings.Repeat("-", 12))

	lastToken := ""
	for _, r := range results {
		if r.token != lastToken {
			if lastToken != "" {
				fmt.Fprintln(w, "\t\t\t\t") // blank separator between tokens
			}
			lastToken = r.token
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.token, r.wallet, r.address, r.balance, r.err)
	}
	w.Flush()
}

// ── helpers ───────────────────────────────────────────────────────────────────

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 30 {
		return s[:30] + "…"
	}
	return s
}
