// Command analyze evaluates a batch of financial ratios for a company
// payload file and renders the report as Markdown or HTML. With -save the
// report is also persisted against a fresh request id.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finratio/pkg/core/engine"
	"finratio/pkg/core/report"
	"finratio/pkg/core/store"
	"finratio/pkg/core/utils"
)

func main() {
	var (
		inputPath = flag.String("input", "", "payload file (JSON or HJSON) with company_name and financial_data")
		metricIDs = flag.String("metrics", "", "comma-separated metric ids (default: all registered)")
		format    = flag.String("format", "markdown", "output format: markdown or html")
		outPath   = flag.String("out", "", "write report to file instead of stdout")
		save      = flag.Bool("save", false, "persist the report (requires DATABASE_URL)")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *inputPath == "" {
		log.Fatal("missing -input payload file")
	}

	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.WithError(err).Fatal("failed to read payload file")
	}

	var req engine.BatchRequest
	if err := utils.SmartParse(data, &req); err != nil {
		log.WithError(err).Fatal("failed to parse payload file")
	}
	if len(req.FinancialData) == 0 {
		log.Fatal("payload has no financial_data line items")
	}
	if *metricIDs != "" {
		req.Metrics = nil
		for _, id := range strings.Split(*metricIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.Metrics = append(req.Metrics, id)
			}
		}
	}

	ctx := context.Background()
	eng := engine.Default()
	rep := eng.EvaluateBatch(ctx, req)
	log.WithFields(logrus.Fields{
		"company": rep.CompanyName,
		"results": len(rep.Results),
		"errors":  len(rep.Errors),
	}).Info("batch evaluation complete")

	var rendered []byte
	switch *format {
	case "markdown", "md":
		rendered = []byte(report.Markdown(rep))
	case "html":
		rendered, err = report.HTML(rep)
		if err != nil {
			log.WithError(err).Fatal("failed to render HTML report")
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, rendered, 0o644); err != nil {
			log.WithError(err).Fatal("failed to write report file")
		}
		log.WithField("path", *outPath).Info("report written")
	} else {
		fmt.Print(string(rendered))
	}

	if *save {
		db, err := store.Open(ctx, os.Getenv("DATABASE_URL"))
		if err != nil {
			log.WithError(err).Fatal("failed to open database")
		}
		defer db.Close()

		requestID := uuid.New()
		if err := store.NewReportRepo(db).Save(ctx, requestID, rep); err != nil {
			log.WithError(err).Fatal("failed to save report")
		}
		log.WithField("request_id", requestID).Info("report saved")
	}
}
