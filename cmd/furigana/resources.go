package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/furigana"
	"github.com/npillmayer/furigana/kanjidic"
	"github.com/npillmayer/furigana/restext"
)

// loadResources reads all resource files named in the configuration.
// Missing file names are skipped.
func loadResources(conf config) (*furigana.ResourceSet, error) {
	res := furigana.NewResourceSet()
	var supplements []furigana.Kanji
	if conf.supplement != "" {
		f, err := os.Open(conf.supplement)
		if err != nil {
			return nil, err
		}
		supplements, err = restext.ReadSupplements(f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	if conf.kanjidic != "" {
		if err := loadFile(conf.kanjidic, func(f *os.File) error {
			return kanjidic.Load(res, f, supplements...)
		}); err != nil {
			return nil, err
		}
	} else {
		tracer().Infof("no KANJIDIC2 file given, kanji readings are limited to supplements")
		for _, k := range supplements {
			if err := res.AddKanji(k); err != nil {
				return nil, err
			}
		}
	}
	if conf.overrides != "" {
		if err := loadFile(conf.overrides, func(f *os.File) error {
			return restext.LoadOverrides(res, f)
		}); err != nil {
			return nil, err
		}
	}
	if conf.special != "" {
		if err := loadFile(conf.special, func(f *os.File) error {
			return restext.LoadExpressions(res, f)
		}); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func loadFile(name string, load func(*os.File) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	tracer().Debugf("loading %s", name)
	if err := load(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
