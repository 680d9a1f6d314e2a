package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/paydown"
	md "github.com/nao1215/markdown"
)

// PathMarkdown renders a synthetic price path and its monthly returns.
func PathMarkdown(title string, returns *paydown.Returns, prices []float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Price", "Return"},
		Rows:   [][]string{},
	}
	i := 0
	for on, r := range returns.Values() {
		ret := "-" // the first return is unused by convention
		if i > 0 {
			ret = fmt.Sprintf("%+.2f%%", r*100)
		}
		table.Rows = append(table.Rows, []string{
			on.String(),
			fmt.Sprintf("%.2f", prices[i]),
			ret,
		})
		i++
	}
	doc.Table(table)

	return doc.String()
}

// ReturnsMarkdown renders a monthly return series.
func ReturnsMarkdown(title string, returns *paydown.Returns) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Return"},
		Rows:   [][]string{},
	}
	i := 0
	for on, r := range returns.Values() {
		ret := "-"
		if i > 0 {
			ret = fmt.Sprintf("%+.2f%%", r*100)
		}
		table.Rows = append(table.Rows, []string{on.String(), ret})
		i++
	}
	doc.Table(table)

	return doc.String()
}
