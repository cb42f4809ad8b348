package modelmgr

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const menuBanner = `
+--------------------------------------------+
|  vi-arena - Ollama Model Manager           |
+--------------------------------------------+
`

// Menu is the interactive line-oriented front end over Client and Puller
type Menu struct {
	Client      *Client
	Puller      *Puller
	BackendFile string

	In  io.Reader
	Out io.Writer
}

// ErrDaemonDown is returned by Menu.Run when Ollama does not answer
var ErrDaemonDown = errors.New("ollama is not running")

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprint(m.Out, menuBanner)

	if !m.Client.Check(ctx) {
		fmt.Fprintln(m.Out, "Ollama is not running!")
		fmt.Fprintln(m.Out, "   Start it with: ollama serve")
		return ErrDaemonDown
	}
	fmt.Fprintln(m.Out, "Ollama is running")

	sc := bufio.NewScanner(m.In)
	for {
		fmt.Fprint(m.Out, "\nOptions:\n"+
			"1. List installed models\n"+
			"2. Download a recommended model\n"+
			"3. Test a model\n"+
			"4. Update backend model\n"+
			"5. Show recommended models\n"+
			"0. Exit\n"+
			"\nSelect option (0-5): ")

		choice, ok := readLine(sc)
		if !ok {
			return sc.Err()
		}

		switch choice {
		case "1":
			m.listModels(ctx)
		case "2":
			if err := m.download(ctx, sc); err != nil {
				return err
			}
		case "3":
			fmt.Fprint(m.Out, "Enter model name to test: ")
			if name, ok := readLine(sc); ok && name != "" {
				m.testModel(ctx, name)
			}
		case "4":
			fmt.Fprint(m.Out, "Enter model name to set in backend: ")
			if name, ok := readLine(sc); ok && name != "" {
				m.setBackend(name)
			}
		case "5":
			PrintRecommended(m.Out)
		case "0":
			fmt.Fprintln(m.Out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid option")
		}
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func (m *Menu) listModels(ctx context.Context) {
	models, err := m.Client.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(m.Out, "Error: %v\n", err)
		return
	}
	if len(models) == 0 {
		fmt.Fprintln(m.Out, "No models installed")
		return
	}
	fmt.Fprintln(m.Out, "\nInstalled models:")
	for _, model := range models {
		fmt.Fprintf(m.Out, "   - %s\n", model.Name)
	}
}

func (m *Menu) download(ctx context.Context, sc *bufio.Scanner) error {
	fmt.Fprintln(m.Out, "\nRecommended models:")
	for i, r := range Recommended {
		fmt.Fprintf(m.Out, "%d. %s (%s) - %s\n", i+1, r.Name, r.Size, r.Description)
	}
	fmt.Fprintln(m.Out, "0. Cancel")
	fmt.Fprint(m.Out, "Select model to download: ")

	line, ok := readLine(sc)
	if !ok {
		return sc.Err()
	}
	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 || n > len(Recommended) {
		return nil
	}

	name := Recommended[n-1].Name
	fmt.Fprintf(m.Out, "\nPulling model: %s\n   This may take several minutes...\n", name)
	if err := m.Puller.Pull(ctx, name); err != nil {
		fmt.Fprintf(m.Out, "Failed to install %s: %v\n", name, err)
		return nil
	}
	fmt.Fprintf(m.Out, "Successfully installed %s\n", name)
	return nil
}

func (m *Menu) testModel(ctx context.Context, name string) {
	fmt.Fprintf(m.Out, "\nTesting model: %s\n", name)
	resp, err := m.Client.Generate(ctx, name, DefaultPrompt)
	if err != nil {
		fmt.Fprintf(m.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.Out, "Model responded successfully")
	fmt.Fprintf(m.Out, "Response: %s...\n", Truncate(resp, 100))
}

func (m *Menu) setBackend(name string) {
	if err := UpdateBackendModel(m.BackendFile, name); err != nil {
		fmt.Fprintf(m.Out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.Out, "Updated %s to use: %s\n", m.BackendFile, name)
}

// PrintRecommended writes the catalogue with descriptions
func PrintRecommended(w io.Writer) {
	fmt.Fprintln(w, "\nRecommended models:")
	for _, r := range Recommended {
		fmt.Fprintf(w, "\n%s (%s)\n", r.Name, r.Size)
		fmt.Fprintf(w, "  * %s\n", r.Description)
	}
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
