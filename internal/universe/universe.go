package universe

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// Group names accepted in the universe file.
const (
	GroupPortfolio = "PORTFOLIO"
	GroupWatchlist = "WATCHLIST"
)

// Entry is one row of the universe CSV.
type Entry struct {
	Symbol      string `csv:"symbol"`
	Group       string `csv:"group"`
	Description string `csv:"description"`
}

// Universe is the instrument list split into its two logical groups.
type Universe struct {
	Portfolio []Entry
	Watchlist []Entry

	descriptions map[string]string
}

// Load reads the universe CSV. Rows with an unknown group are rejected so
// a typo cannot silently drop a ticker from both groups.
func Load(path string) (*Universe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open universe file: %w", err)
	}
	defer f.Close()

	var entries []*Entry
	if err := gocsv.UnmarshalFile(f, &entries); err != nil {
		return nil, fmt.Errorf("parse universe file: %w", err)
	}

	u := &Universe{descriptions: make(map[string]string)}
	for _, e := range entries {
		symbol := strings.ToUpper(strings.TrimSpace(e.Symbol))
		if symbol == "" {
			continue
		}
		row := Entry{Symbol: symbol, Group: strings.ToUpper(strings.TrimSpace(e.Group)), Description: strings.TrimSpace(e.Description)}
		switch row.Group {
		case GroupPortfolio:
			u.Portfolio = append(u.Portfolio, row)
		case GroupWatchlist:
			u.Watchlist = append(u.Watchlist, row)
		default:
			return nil, fmt.Errorf("universe: unknown group %q for symbol %s", e.Group, symbol)
		}
		if row.Description != "" {
			u.descriptions[symbol] = row.Description
		}
	}
	if len(u.Portfolio) == 0 && len(u.Watchlist) == 0 {
		return nil, fmt.Errorf("universe: no symbols in %s", path)
	}
	return u, nil
}

// Describe returns the symbol's description, falling back to the symbol.
func (u *Universe) Describe(symbol string) string {
	if d, ok := u.descriptions[symbol]; ok {
		return d
	}
	return symbol
}

// PortfolioSymbols lists the portfolio tickers in file order.
func (u *Universe) PortfolioSymbols() []string {
	return symbols(u.Portfolio)
}

// WatchlistSymbols lists the watchlist tickers in file order.
func (u *Universe) WatchlistSymbols() []string {
	return symbols(u.Watchlist)
}

func symbols(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Symbol
	}
	return out
}
