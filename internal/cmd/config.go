// Package cmd holds helpers shared by myrkle operations: configured
// endpoints, transaction stamping, and account nickname resolution.
package cmd

import (
	"errors"

	"github.com/go-ini/ini"
	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/ObiajuluM/myrkle/cfg"
	"github.com/ObiajuluM/myrkle/indexer"
	"github.com/ObiajuluM/myrkle/tx"
)

// Stamp defaults, overridable in configuration.
const (
	defaultSourceTag = 10011001
	defaultMemoType  = "Done-with-Myrkle"
	defaultMemoData  = "https://myrkle.app"
)

var loaded *cfg.Config

// Config wraps the command framework's ini file with nickname and
// endpoint helpers.  Absent configuration is not an error; defaults
// apply.
func Config() (cfg.Config, error) {
	if loaded != nil {
		return *loaded, nil
	}
	file, err := command.Config()
	if err != nil && !errors.Is(err, config.ConfigNotFound) {
		return cfg.Config{}, err
	}
	source := file.File
	if source == nil {
		// no configuration directory; defaults apply
		source = ini.Empty()
	}
	c := cfg.FromINI(source)
	loaded = &c
	return c, nil
}

func Rippled() (string, error) {
	dfault := "https://s1.ripple.com:51234"
	c, err := Config()
	if err != nil {
		return dfault, err
	}
	rippled := c.GetRippled()
	if rippled == "" {
		rippled = dfault
	}
	return rippled, nil
}

func Indexer() (string, error) {
	dfault := indexer.MainnetBase
	c, err := Config()
	if err != nil {
		return dfault, err
	}
	val := c.GetIndexer()
	if val == "" {
		val = dfault
	}
	return val, nil
}

// StampOptions returns the options that mark a composed transaction
// as this application's work.  Configuration overrides the defaults.
func StampOptions() ([]tx.Option, error) {
	c, err := Config()
	if err != nil {
		return nil, err
	}
	tag := c.GetSourceTag()
	if tag == nil {
		tmp := uint32(defaultSourceTag)
		tag = &tmp
	}
	memoType := c.GetMemoType()
	if memoType == "" {
		memoType = defaultMemoType
	}
	memoData := c.GetMemoData()
	if memoData == "" {
		memoData = defaultMemoData
	}
	return tx.Stamp(tag, memoType, memoData), nil
}

// WireStamp is StampOptions for the wire-level composers that bypass
// the options pattern.
func WireStamp(feeDrops string) (tx.WireStamp, error) {
	c, err := Config()
	if err != nil {
		return tx.WireStamp{}, err
	}
	stamp := tx.WireStamp{
		MemoType: c.GetMemoType(),
		MemoData: c.GetMemoData(),
		Fee:      feeDrops,
	}
	if stamp.MemoType == "" {
		stamp.MemoType = defaultMemoType
	}
	if stamp.MemoData == "" {
		stamp.MemoData = defaultMemoData
	}
	tag := c.GetSourceTag()
	if tag == nil {
		tmp := uint32(defaultSourceTag)
		tag = &tmp
	}
	stamp.SourceTag = tag
	return stamp, nil
}
