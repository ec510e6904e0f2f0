package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/savekitty/internal/storage"
)

var flagYes bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the raw save file as YAML",
	Long: `Prints every stored key and its raw value. The game is not loaded, so
nothing is caught up or written.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withKV(func(kv storage.KV) error {
			return exportSave(context.Background(), kv, os.Stdout)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the save file",
	Long: `Deletes every stored key. The next command starts a brand new game.

Requires --yes.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if !flagYes {
			return errors.New("this erases all progress (use --yes to confirm)")
		}
		return withKV(func(kv storage.KV) error {
			n, err := eraseSave(context.Background(), kv)
			if err != nil {
				return err
			}
			fmt.Printf("Erased %d keys.\n", n)
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm erasing the save file")
}

// withKV opens only the save file. Unlike withGame there is no in-memory
// fallback: a missing database is an error here.
func withKV(fn func(kv storage.KV) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kv, err := openKV(cfg, newLogger())
	if err != nil {
		return fmt.Errorf("cannot open save file: %w", err)
	}
	return errors.Join(fn(kv), kv.Close())
}

func exportSave(ctx context.Context, kv storage.KV, w io.Writer) error {
	all, err := kv.All(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "# empty save")
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(all); err != nil {
		return err
	}
	return enc.Close()
}

// eraseSave deletes every key in sorted order and returns how many were
// removed.
func eraseSave(ctx context.Context, kv storage.KV) (int, error) {
	all, err := kv.All(ctx)
	if err != nil {
		return 0, err
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if err := kv.Delete(ctx, k); err != nil {
			return i, fmt.Errorf("delete %q: %w", k, err)
		}
	}
	return len(keys), nil
}
