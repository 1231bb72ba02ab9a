// Package main demonstrates usage of the scg-catchall packages.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/next-trace/scg-catchall/dynamic"
	"github.com/next-trace/scg-catchall/formatted"
	"github.com/next-trace/scg-catchall/unit"
)

type quotaError struct {
	Used, Limit int
}

func (q quotaError) Error() string { return "quota exceeded" }

func readConfig(path string) error {
	_, err := os.ReadFile(path)
	return err
}

func checkQuota(used int) error {
	if used > 10 {
		return quotaError{Used: used, Limit: 10}
	}

	return nil
}

// loadUnit only cares whether something failed.
func loadUnit(path string) error {
	if err := readConfig(path); err != nil {
		return unit.Ensure(err)
	}

	return unit.Ensure(checkQuota(12))
}

// loadFormatted keeps a printable copy of the failure.
func loadFormatted(used int) error {
	return formatted.Ensure(checkQuota(used), formatted.WithRenderer(formatted.GoSyntax))
}

// loadDynamic keeps the failure itself for the caller to inspect.
func loadDynamic(path string) error {
	if err := readConfig(path); err != nil {
		return dynamic.Ensure(err)
	}

	return dynamic.Ensure(checkQuota(12))
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := loadUnit("/nonexistent/app.yaml"); errors.Is(err, unit.Error{}) {
		log.WithError(err).Warn("load failed")
	}

	if err := loadFormatted(42); err != nil {
		var fe formatted.Error
		if errors.As(err, &fe) {
			log.WithField("detail", fe.Text()).Warn("quota check failed")
		}
	}

	err := loadDynamic("/nonexistent/app.yaml")

	var de dynamic.Error
	if !errors.As(err, &de) {
		return
	}

	if q, qerr := dynamic.Recover[quotaError](de); qerr == nil {
		log.WithFields(logrus.Fields{"used": q.Used, "limit": q.Limit}).Warn("quota exceeded")
		return
	}

	if pe, perr := dynamic.Recover[*fs.PathError](de); perr == nil {
		log.WithFields(logrus.Fields{"op": pe.Op, "path": pe.Path}).WithError(pe.Err).Error("cannot read config")
		return
	}

	log.WithField("type", de.Type()).WithError(de).Error("unexpected failure")
}
