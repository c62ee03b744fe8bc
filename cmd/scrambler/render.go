package main

import (
	"fmt"
	"hash/fnv"
	"io"
	"text/tabwriter"
)

const enrollTemplate = "pane enroll <url> --context %s"

// renderTable prints the human-readable seed table. Each row shows the seed,
// an example alias email derived from it, and the enrollment command that
// embeds it. Display only; the export file carries the bare seeds.
func renderTable(w io.Writer, seeds []string, domain string) {
	fmt.Fprintf(w, "\n  pane scrambler — alias seeds\n\n")
	fmt.Fprintf(w, "  Use one seed per service. Never reuse.\n\n")

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "  SEED\tALIAS EMAIL EXAMPLE\tCOMMAND")
	for _, s := range seeds {
		fmt.Fprintf(tw, "  %s\t%s\t"+enrollTemplate+"\n", s, aliasExample(s, domain), s)
	}
	tw.Flush()
}

// aliasExample derives a sample alias address from a seed: the seed plus a
// short content hash suffix at the given domain. The hash exists only to
// make the example look realistic; it has no security properties.
func aliasExample(seed, domain string) string {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return fmt.Sprintf("%s-%x@%s", seed, h.Sum32()%0xFFF, domain)
}
