package render

import "github.com/wdm0006/usmap/pkg/usmap"

// QuickPlot loads a data file, renders it with the default renderer and
// configuration plus the given title and scheme, and saves to savePath
// when non-empty. It returns the session for follow-up calls.
func QuickPlot(path, title, colorScheme, savePath string, opts ...usmap.Option) (*usmap.Session, error) {
	opts = append(opts, usmap.WithRenderer(New()))
	sess, err := usmap.Open(path, opts...)
	if err != nil {
		return nil, err
	}
	sess.Customize(usmap.Overrides{Title: &title, ColorScheme: &colorScheme})
	if _, err := sess.Plot(savePath, false); err != nil {
		return nil, err
	}
	return sess, nil
}
