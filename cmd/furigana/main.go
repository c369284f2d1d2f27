/*
Command furigana computes furigana for the entries of a JMdict or JMnedict
file, or for a single entry given on the command line.

	furigana -kanjidic kanjidic2.xml -supplement kanji-supp.txt \
	         -overrides overrides.txt -special special.txt \
	         -jmdict JMdict_e.xml -out furigana.txt

	furigana -kanjidic kanjidic2.xml 頑張る がんばる

Every entry with exactly one solution is written in the serialized form
ORTH|PRON|PARTS, or as a JSON array with -json.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/jmdict"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer writes to trace with key 'furigana.cli'
func tracer() tracing.Trace {
	return tracing.Select("furigana.cli")
}

const batchSize = 4096

type config struct {
	kanjidic, supplement, overrides, special string
	jmdict, out                               string
	json, names, unsolved, kanjiOnly          bool
	workers                                   int
	trace                                     string
}

func main() {
	var conf config
	flag.StringVar(&conf.kanjidic, "kanjidic", "", "KANJIDIC2 XML file")
	flag.StringVar(&conf.supplement, "supplement", "", "supplementary kanji readings")
	flag.StringVar(&conf.overrides, "overrides", "", "override list with fixed solutions")
	flag.StringVar(&conf.special, "special", "", "special readings file")
	flag.StringVar(&conf.jmdict, "jmdict", "", "JMdict or JMnedict XML file to process")
	flag.StringVar(&conf.out, "out", "", "output file (default stdout)")
	flag.BoolVar(&conf.json, "json", false, "write JSON instead of the serialized form")
	flag.BoolVar(&conf.names, "names", false, "use name readings (nanori), for JMnedict")
	flag.BoolVar(&conf.unsolved, "unsolved", false, "write entries without a unique solution, marked ???")
	flag.BoolVar(&conf.kanjiOnly, "kanji-only", false, "skip entries without kanji")
	flag.IntVar(&conf.workers, "workers", runtime.NumCPU(), "number of parallel resolvers")
	flag.StringVar(&conf.trace, "trace", "Info", "trace level [Debug|Info|Error]")
	flag.Parse()

	if err := setupTracing(conf.trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, conf, flag.Args()); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf config, args []string) error {
	res, err := loadResources(conf)
	if err != nil {
		return err
	}
	var opts []furigana.Option
	if conf.names {
		opts = append(opts, furigana.WithNanori())
	}
	resolver := furigana.NewResolver(res, opts...)

	if len(args) == 2 {
		set, err := resolver.Resolve(furigana.NewEntry(args[0], args[1]))
		if err != nil {
			return err
		}
		fmt.Println(set)
		return nil
	} else if len(args) != 0 || conf.jmdict == "" {
		return fmt.Errorf("usage: furigana [flags] -jmdict FILE | furigana [flags] ORTHOGRAPHY PRONUNCIATION")
	}

	in, err := os.Open(conf.jmdict)
	if err != nil {
		return err
	}
	defer in.Close()
	var out io.Writer = os.Stdout
	if conf.out != "" {
		f, err := os.Create(conf.out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	buf := bufio.NewWriter(out)
	w := newWriter(buf, conf.json, conf.unsolved)
	start := time.Now()
	if err := process(ctx, resolver, jmdict.NewReader(in), w, conf); err != nil {
		return err
	}
	if err := w.close(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	tracer().Infof("found furigana for %d of %d entries", w.solved, w.total)
	tracer().Infof("process took %.1f seconds", time.Since(start).Seconds())
	return nil
}

// process resolves the dictionary batch by batch, writing results in input
// order.
func process(ctx context.Context, resolver *furigana.Resolver, dict *jmdict.Reader,
	w *writer, conf config) error {
	//
	batch := make([]furigana.Entry, 0, batchSize)
	flush := func() error {
		sets, err := resolveBatch(ctx, resolver, batch, conf.workers)
		if err != nil {
			return err
		}
		for _, set := range sets {
			if err := w.write(set); err != nil {
				return err
			}
		}
		batch = batch[:0]
		return nil
	}
	for e, err := range dict.All() {
		if err != nil {
			return err
		}
		if conf.kanjiOnly && !resolver.Resources().HasRealKanji(e.Orthography) {
			continue
		}
		if batch = append(batch, e); len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// resolveBatch resolves entries in parallel. The result has one solution
// set per entry, in input order.
func resolveBatch(ctx context.Context, resolver *furigana.Resolver, entries []furigana.Entry,
	workers int) ([]*furigana.SolutionSet, error) {
	//
	sets := make([]*furigana.SolutionSet, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := resolver.Resolve(e)
			sets[i] = set
			return err
		})
	}
	return sets, g.Wait()
}
