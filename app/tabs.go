package app

import (
	"fmt"

	"github.com/jask/tabset/tabs"
	"github.com/jask/tabset/widgets"
)

// TabSpec describes one tab of the demo group and the panel it controls.
type TabSpec struct {
	Name     string
	Label    string
	Body     string
	Disabled bool
	Closable bool
}

// DemoTabs returns the fixed demo tabs followed by extra numbered closable
// tabs, enough of which make the strip overflow.
func DemoTabs(extra int) []TabSpec {
	specs := []TabSpec{
		{Name: "general", Label: "General", Body: "This is the general tab panel."},
		{Name: "custom", Label: "Custom", Body: "This is the custom tab panel."},
		{Name: "advanced", Label: "Advanced", Body: "This is the advanced tab panel."},
		{Name: "disabled", Label: "Disabled", Body: "This is a disabled tab panel.", Disabled: true},
	}
	for i := 1; i <= extra; i++ {
		specs = append(specs, TabSpec{
			Name:     fmt.Sprintf("tab-%d", i),
			Label:    fmt.Sprintf("Tab %d", i),
			Body:     fmt.Sprintf("Panel %d. Close it with delete or the × glyph.", i),
			Closable: true,
		})
	}
	return specs
}

func (s TabSpec) Build() (*tabs.Tab, *tabs.Panel) {
	tab := tabs.NewTab(s.Name, s.Label, tabs.TabDisabled(s.Disabled), tabs.TabClosable(s.Closable))
	panel := tabs.NewPanel(s.Name, widgets.Pane{Title: s.Label, Body: widgets.Text(s.Body)})
	return tab, panel
}

func findSpec(specs []TabSpec, name string) (TabSpec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return TabSpec{}, false
}
