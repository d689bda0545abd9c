package calldata

import "golang.org/x/sync/errgroup"

// annotate classifies the words of every record. Nested records are
// classified over the words they were extracted with; the top-level record
// only when WithTopLevelTypes is set. Records are independent, so they are
// classified concurrently.
func (d *Decoder) annotate(root *CallRecord) error {
	var g errgroup.Group
	g.SetLimit(d.config.concurrency)

	root.Walk(func(rec *CallRecord) bool {
		switch {
		case rec.Depth > 0:
			g.Go(func() error {
				rec.Types = ClassifyAll(rec.RawParams)
				return nil
			})
		case d.config.topLevelTypes:
			g.Go(func() error {
				rec.Types = ClassifyAll(rec.Params)
				return nil
			})
		}
		return true
	})

	return g.Wait()
}
