// Command mftbrowse is an interactive TUI for paging through the records
// decoded from one NTFS artifact file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shubham/mfte/internal/ntfs"
	"github.com/shubham/mfte/internal/source"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder())

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// recordItem adapts one decoded record to bubbles/list's Item interface.
type recordItem struct {
	title string
	desc  string
	body  string
}

func (i recordItem) Title() string       { return i.title }
func (i recordItem) Description() string { return i.desc }
func (i recordItem) FilterValue() string { return i.title }

type model struct {
	kind   ntfs.Kind
	list   list.Model
	width  int
	height int
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-4)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf(" mftbrowse — %s ", m.kind)))
	s.WriteString("\n\n")

	detail := ""
	if item, ok := m.list.SelectedItem().(recordItem); ok {
		detail = item.body
	}

	left := m.list.View()
	right := detailStyle.Render(detail)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if m.err != nil {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("/ to filter • q to quit"))
	return s.String()
}

func buildItems(kind ntfs.Kind, data []byte) ([]list.Item, error) {
	switch kind {
	case ntfs.KindMFT:
		p := ntfs.NewMFTParser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		var items []list.Item
		for _, r := range p.Records() {
			items = append(items, recordItem{
				title: fmt.Sprintf("%d  %s", r.EntryNumber, r.FileName),
				desc:  r.ParentPath,
				body:  mftDetail(r),
			})
		}
		return items, nil

	case ntfs.KindUSN:
		p := ntfs.NewUSNParser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		var items []list.Item
		for _, e := range p.Records() {
			items = append(items, recordItem{
				title: fmt.Sprintf("%d  %s", e.EntryNumber, e.FileName),
				desc:  e.Reason,
				body:  usnDetail(e),
			})
		}
		return items, nil

	case ntfs.KindI30:
		p := ntfs.NewI30Parser(data)
		if err := p.Parse(); err != nil {
			return nil, err
		}
		var items []list.Item
		for _, e := range p.Records() {
			items = append(items, recordItem{
				title: fmt.Sprintf("%d  %s", e.EntryNumber, e.FileName),
				desc:  fmt.Sprintf("size=%d", e.FileSize),
				body:  i30Detail(e),
			})
		}
		return items, nil

	default:
		return nil, fmt.Errorf("mftbrowse does not support interactive browsing of kind %s", kind)
	}
}

func mftDetail(r ntfs.MFTRecord) string {
	return fmt.Sprintf(
		"Entry:       %d (seq %d)\nParent:      %d\nParentPath:  %s\nIsDirectory: %t\nInUse:       %t\nSize:        %d\nCreated:     %s\nModified:    %s\nAccessed:    %s\nChanged:     %s",
		r.EntryNumber, r.SeqNumber, r.ParentEntryNumber, r.ParentPath, r.IsDirectory, r.InUse, r.FileSize,
		formatFiletime(r.Created0x10), formatFiletime(r.Modified0x10), formatFiletime(r.Accessed0x10), formatFiletime(r.RecordChanged0x10),
	)
}

func usnDetail(e ntfs.UsnEntry) string {
	return fmt.Sprintf(
		"Offset:    0x%x\nUSN:       %d\nTimestamp: %s\nEntry:     %d\nParent:    %d\nReason:    %s",
		e.Offset, e.USN, formatFiletime(e.Timestamp), e.EntryNumber, e.ParentEntry, e.Reason,
	)
}

func i30Detail(e ntfs.IndexEntry) string {
	return fmt.Sprintf(
		"Entry:    %d\nParent:   %d\nSize:     %d\nCreated:  %s\nModified: %s\nAccessed: %s",
		e.EntryNumber, e.ParentEntry, e.FileSize, formatFiletime(e.Created), formatFiletime(e.Modified), formatFiletime(e.Accessed),
	)
}

func formatFiletime(ft ntfs.Filetime) string {
	if !ft.Valid {
		return "(absent)"
	}
	return ft.Time.Format("2006-01-02 15:04:05")
}

func main() {
	var (
		file = flag.String("file", "", "Path to the NTFS artifact file (required)")
		kind = flag.String("kind", "auto", "Artifact kind: auto, mft, usn, i30")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: mftbrowse -file <path> [-kind auto|mft|usn|i30]")
		os.Exit(1)
	}

	src, err := source.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening artifact: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	data := src.Bytes()

	resolvedKind := ntfs.Detect(data)
	if *kind != "auto" {
		switch *kind {
		case "mft":
			resolvedKind = ntfs.KindMFT
		case "usn":
			resolvedKind = ntfs.KindUSN
		case "i30":
			resolvedKind = ntfs.KindI30
		default:
			fmt.Fprintf(os.Stderr, "Unsupported -kind for mftbrowse: %s\n", *kind)
			os.Exit(1)
		}
	}

	items, err := buildItems(resolvedKind, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recordList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	recordList.Title = "Records"
	recordList.SetShowStatusBar(true)
	recordList.SetFilteringEnabled(true)

	m := model{kind: resolvedKind, list: recordList}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
