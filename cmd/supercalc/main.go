package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ctrezevant/supercalc"
)

// printer controls what is shown for each statement besides its result.
type printer struct {
	pretty  bool
	reprint bool
	tree    bool
	xml     bool
}

func main() {
	log.SetFlags(0)
	var (
		inname, defsname string
		pr               printer
		depth            int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&defsname, "defs", "", "YAML file of definitions to load before running")
	flag.BoolVar(&pr.pretty, "pretty", isTerminal(os.Stdout), "print results with Unicode operators")
	flag.BoolVar(&pr.reprint, "v", false, "print each statement as parsed")
	flag.BoolVar(&pr.tree, "tree", false, "dump the parse tree of each statement")
	flag.BoolVar(&pr.xml, "xml", false, "dump the parse tree of each statement as XML")
	flag.IntVar(&depth, "depth", supercalc.DefaultMaxDepth, "limit on nested function calls")
	flag.Parse()
	if depth <= 0 {
		log.Fatalf("call depth limit (%d) must be positive", depth)
	}

	sess := supercalc.New(
		supercalc.Output(os.Stdout),
		supercalc.Pretty(pr.pretty),
		supercalc.MaxDepth(depth),
	)
	if defsname != "" {
		defs, err := loadDefs(defsname)
		if err != nil {
			log.Fatal(err)
		}
		if err := defs.apply(sess); err != nil {
			log.Fatalf("loading %s: %v", defsname, err)
		}
	}

	for _, arg := range flag.Args() {
		pr.run(sess, arg)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case f == nil:
		// Only arguments.
	case f == os.Stdin && isTerminal(f):
		if err := repl(sess, pr); err != nil {
			log.Fatal(err)
		}
	default:
		defer f.Close()
		if err := runLines(sess, pr, f); err != nil {
			log.Fatal(err)
		}
	}
}

// run executes one statement, printing whatever pr asks for along with the
// result. Errors are raised and don't stop the session.
func (pr printer) run(sess *supercalc.Session, line string) {
	st, bad := sess.Parse(line)
	if bad != nil {
		sess.Raise(bad)
		return
	}
	if pr.tree {
		fmt.Fprintln(os.Stderr, "Dumping parse tree:")
		fmt.Println(st.Verbose())
	}
	if pr.xml {
		fmt.Println(supercalc.XML(st.Body()))
	}
	if pr.reprint {
		fmt.Println(st.Repr(pr.pretty))
	}
	sess.Print(st.Exec(sess.Context()))
}

// runLines runs each line of r as a statement.
func runLines(sess *supercalc.Session, pr printer, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		pr.run(sess, sc.Text())
	}
	return sc.Err()
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
