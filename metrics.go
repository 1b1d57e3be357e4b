package main

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// summary writes every counter in reg as CSV: metric, labels, value.
func summary(reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "cannot gather metrics")
	}

	w := csv.NewWriter(writer)
	if err := w.Write([]string{"metric", "labels", "value"}); err != nil {
		return err
	}

	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			row := []string{mf.GetName(), strings.Join(labels, ";"), fmt.Sprint(m.GetCounter().GetValue())}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
