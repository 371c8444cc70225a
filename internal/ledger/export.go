package ledger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportFileName returns the dated sales file name for the given day, one file
// per calendar day.
func ExportFileName(day time.Time) string {
	return "sales_" + day.Format("2006-01-02") + ".txt"
}

// Export appends every recorded sale to the dated file under dir, three lines
// per sale:
//
//	<n>;Client=<name>;Date=<DD-MM-YYYY HH:MM:SS>;
//	<n>;Products=<name1>,<price1>;<name2>,<price2>;
//	<n>;Amount=<total>;
//
// Records are numbered from 1 within each export pass. The file is opened in
// append mode and earlier passes are not rewound: exporting twice writes every
// sale twice. Returns the path of the written file.
func (l *Ledger) Export(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, sale := range l.sales {
		n := i + 1
		fmt.Fprintf(w, "%d;Client=%s;Date=%s;\n", n, sale.ClientName, sale.FormatDate())
		parts := make([]string, 0, len(sale.Items))
		for _, item := range sale.Items {
			parts = append(parts, item.Name+","+item.UnitPrice.String())
		}
		fmt.Fprintf(w, "%d;Products=%s;\n", n, strings.Join(parts, ";"))
		fmt.Fprintf(w, "%d;Amount=%s;\n", n, sale.Total.String())
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush export file: %w", err)
	}
	return path, nil
}
