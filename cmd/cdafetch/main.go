// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cdafetch provides a command-line query tool for the CWMS
// Data API.  It prints retrieved data as aligned text tables.
package main

import (
	"fmt"
	"io/ioutil"
	"runtime"
	"time"

	"github.com/diffeo/go-cda/cdaclient"
	"github.com/diffeo/go-cda/cdadata"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

var client *cdaclient.Client

const cliTimeFormat = "2006-01-02T15:04:05"

func parseWindow(c *cli.Context) (begin, end time.Time, err error) {
	if s := c.String("begin"); s != "" {
		begin, err = time.Parse(cliTimeFormat, s)
		if err != nil {
			return
		}
	}
	if s := c.String("end"); s != "" {
		end, err = time.Parse(cliTimeFormat, s)
		if err != nil {
			return
		}
	}
	return
}

func printData(data *cdadata.Data) error {
	t, err := data.Table()
	if err != nil {
		return err
	}
	fmt.Print(t.String())
	return nil
}

var timeseries = cli.Command{
	Name:  "timeseries",
	Usage: "retrieve time series values",
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "id",
			Usage: "time series id, repeatable",
		},
		cli.StringFlag{
			Name:  "office",
			Usage: "owning office id",
		},
		cli.StringFlag{
			Name:  "unit",
			Value: "EN",
			Usage: "unit or unit system of the response",
		},
		cli.StringFlag{
			Name:  "begin",
			Usage: "start of the time window (2006-01-02T15:04:05)",
		},
		cli.StringFlag{
			Name:  "end",
			Usage: "end of the time window",
		},
		cli.BoolFlag{
			Name:  "melted",
			Usage: "keep multiple series in long format",
		},
		cli.IntFlag{
			Name:  "concurrency",
			Value: runtime.NumCPU(),
			Usage: "retrieve this many series in parallel",
		},
	},
	Action: func(c *cli.Context) error {
		ids := c.StringSlice("id")
		if len(ids) == 0 {
			return cdaclient.ErrNoTimeseriesID
		}
		begin, end, err := parseWindow(c)
		if err != nil {
			return err
		}
		if len(ids) == 1 {
			data, err := client.Timeseries(cdaclient.TimeseriesQuery{
				ID:     ids[0],
				Office: c.String("office"),
				Unit:   c.String("unit"),
				Begin:  begin,
				End:    end,
			})
			if err != nil {
				return err
			}
			return printData(data)
		}
		t, err := client.MultiTimeseriesTable(cdaclient.MultiTimeseriesQuery{
			IDs:         ids,
			Office:      c.String("office"),
			Unit:        c.String("unit"),
			Begin:       begin,
			End:         end,
			Melted:      c.Bool("melted"),
			Concurrency: c.Int("concurrency"),
		})
		if err != nil {
			return err
		}
		fmt.Print(t.String())
		return nil
	},
}

var locations = cli.Command{
	Name:  "locations",
	Usage: "list locations",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "office",
			Usage: "owning office id",
		},
		cli.StringFlag{
			Name:  "like",
			Usage: "regular expression matched against location ids",
		},
		cli.StringFlag{
			Name:  "unit",
			Usage: "unit system of the response (EN or SI)",
		},
	},
	Action: func(c *cli.Context) error {
		data, err := client.Locations(cdaclient.LocationsQuery{
			Office: c.String("office"),
			Like:   c.String("like"),
			Unit:   c.String("unit"),
		})
		if err != nil {
			return err
		}
		return printData(data)
	},
}

var catalog = cli.Command{
	Name:  "catalog",
	Usage: "list the time series catalog",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "office",
			Usage: "owning office id",
		},
		cli.StringFlag{
			Name:  "like",
			Usage: "regular expression matched against series ids",
		},
		cli.BoolFlag{
			Name:  "extents",
			Usage: "include recorded data extents",
		},
	},
	Action: func(c *cli.Context) error {
		data, err := client.TimeseriesCatalog(cdaclient.TimeseriesCatalogQuery{
			Office:         c.String("office"),
			Like:           c.String("like"),
			IncludeExtents: c.Bool("extents"),
		})
		if err != nil {
			return err
		}
		return printData(data)
	},
}

var rating = cli.Command{
	Name:  "rating",
	Usage: "retrieve the current rating table for a rating id",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "id",
			Usage: "rating id",
		},
		cli.StringFlag{
			Name:  "office",
			Usage: "owning office id",
		},
	},
	Action: func(c *cli.Context) error {
		data, err := client.CurrentRating(c.String("id"), c.String("office"))
		if err != nil {
			return err
		}
		return printData(data)
	},
}

func main() {
	app := cli.NewApp()
	app.Usage = "query the CWMS Data API"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "api-root",
			Usage: "base URL of the CDA instance",
		},
		cli.StringFlag{
			Name:  "api-key",
			Usage: "authorization key for write access",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML configuration file with api-root and api-key",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every request",
		},
	}
	app.Commands = []cli.Command{
		timeseries,
		locations,
		catalog,
		rating,
	}
	app.Before = func(c *cli.Context) error {
		config := cdaclient.Config{
			APIRoot: c.String("api-root"),
			APIKey:  c.String("api-key"),
		}
		if filename := c.String("config"); filename != "" {
			fileConfig, err := loadConfigYaml(filename)
			if err != nil {
				logrus.WithField("err", err).Fatal("Could not load YAML configuration")
			}
			if config.APIRoot == "" {
				config.APIRoot, _ = fileConfig["api-root"].(string)
			}
			if config.APIKey == "" {
				config.APIKey, _ = fileConfig["api-key"].(string)
			}
		}
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		var err error
		client, err = cdaclient.New(config)
		return err
	}
	app.RunAndExitOnError()
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}
