// Command ethashctl drives the ethash core from the command line:
// compute a single digest, dump a cache's diagnostic checksum, or
// benchmark hash throughput against a chosen Params preset.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tmthrgd/go-hex"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/TiimJiim/ethash.js"
	"github.com/TiimJiim/ethash.js/internal/ctlconfig"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ethashctl: logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	app := cli.NewApp()
	app.Name = "ethashctl"
	app.Usage = "compute and inspect Ethash-style proof-of-work digests"

	paramsFlags := []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "YAML params file (overrides --epoch)"},
		cli.IntFlag{Name: "epoch, e", Usage: "mainnet epoch to derive Params from", Value: 0},
	}

	app.Commands = []cli.Command{
		{
			Name:  "hash",
			Usage: "compute the digest of a (seed, header, nonce) triple",
			Flags: append(paramsFlags,
				cli.StringFlag{Name: "seed, s", Usage: "hex-encoded seed", Required: true},
				cli.StringFlag{Name: "header", Usage: "hex-encoded 32-byte header", Required: true},
				cli.StringFlag{Name: "nonce, n", Usage: "hex-encoded 8-byte nonce", Required: true},
			),
			Action: func(c *cli.Context) error {
				return runHash(sugar, c)
			},
		},
		{
			Name:  "cachedigest",
			Usage: "print the Keccak-256 checksum of a Params/seed pair's cache",
			Flags: append(paramsFlags,
				cli.StringFlag{Name: "seed, s", Usage: "hex-encoded seed", Required: true},
			),
			Action: func(c *cli.Context) error {
				return runCacheDigest(sugar, c)
			},
		},
		{
			Name:  "bench",
			Usage: "measure hash throughput for a Params/seed pair",
			Flags: append(paramsFlags,
				cli.StringFlag{Name: "seed, s", Usage: "hex-encoded seed", Required: true},
				cli.IntFlag{Name: "count", Usage: "number of hashes to compute", Value: 1000},
			),
			Action: func(c *cli.Context) error {
				return runBench(sugar, c)
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		sugar.Fatalw("ethashctl failed", "error", err)
	}
}

func loadParams(c *cli.Context) (ethash.Params, error) {
	if path := c.String("config"); path != "" {
		return ctlconfig.LoadParams(path)
	}
	return ethash.MainnetParams(c.Int("epoch")), nil
}

func runHash(log *zap.SugaredLogger, c *cli.Context) error {
	params, err := loadParams(c)
	if err != nil {
		return err
	}

	seed, err := hex.DecodeString(c.String("seed"))
	if err != nil {
		return fmt.Errorf("ethashctl: decode seed: %w", err)
	}
	header, err := hex.DecodeString(c.String("header"))
	if err != nil {
		return fmt.Errorf("ethashctl: decode header: %w", err)
	}
	nonce, err := hex.DecodeString(c.String("nonce"))
	if err != nil {
		return fmt.Errorf("ethashctl: decode nonce: %w", err)
	}

	ev, err := ethash.New(params, seed)
	if err != nil {
		return fmt.Errorf("ethashctl: build evaluator: %w", err)
	}
	defer ev.Close()

	start := time.Now()
	digest, err := ev.Hash(header, nonce)
	if err != nil {
		return fmt.Errorf("ethashctl: hash: %w", err)
	}
	log.Infow("computed digest", "elapsed", time.Since(start), "digest", hex.EncodeToString(digest[:]))
	fmt.Println(hex.EncodeToString(digest[:]))
	return nil
}

func runCacheDigest(log *zap.SugaredLogger, c *cli.Context) error {
	params, err := loadParams(c)
	if err != nil {
		return err
	}

	seed, err := hex.DecodeString(c.String("seed"))
	if err != nil {
		return fmt.Errorf("ethashctl: decode seed: %w", err)
	}

	start := time.Now()
	ev, err := ethash.New(params, seed)
	if err != nil {
		return fmt.Errorf("ethashctl: build evaluator: %w", err)
	}
	defer ev.Close()

	digest := ev.CacheDigest()
	log.Infow("computed cache digest", "elapsed", time.Since(start), "digest", hex.EncodeToString(digest[:]))
	fmt.Println(hex.EncodeToString(digest[:]))
	return nil
}

func runBench(log *zap.SugaredLogger, c *cli.Context) error {
	params, err := loadParams(c)
	if err != nil {
		return err
	}

	seed, err := hex.DecodeString(c.String("seed"))
	if err != nil {
		return fmt.Errorf("ethashctl: decode seed: %w", err)
	}

	ev, err := ethash.New(params, seed)
	if err != nil {
		return fmt.Errorf("ethashctl: build evaluator: %w", err)
	}
	defer ev.Close()

	count := c.Int("count")
	header := make([]byte, 32)
	nonce := make([]byte, 8)

	start := time.Now()
	for i := 0; i < count; i++ {
		nonce[0] = byte(i)
		nonce[1] = byte(i >> 8)
		nonce[2] = byte(i >> 16)
		if _, err := ev.Hash(header, nonce); err != nil {
			return fmt.Errorf("ethashctl: hash: %w", err)
		}
	}
	elapsed := time.Since(start)
	rate := float64(count) / elapsed.Seconds()

	log.Infow("benchmark complete", "count", count, "elapsed", elapsed, "hashesPerSec", rate)
	fmt.Printf("%d hashes in %v (%.2f H/s)\n", count, elapsed, rate)
	return nil
}
