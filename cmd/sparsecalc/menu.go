package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/workspace"
)

const menuRule = "========================================"

// errMenuClosed signals end of input while a prompt was waiting.
var errMenuClosed = errors.New("input closed")

// menu is one interactive session over a line-oriented input.
type menu struct {
	a   *app
	sc  *bufio.Scanner
	out io.Writer
}

// runMenu drives the interactive loop until "5" or end of input.
func (a *app) runMenu(out io.Writer) error {
	m := &menu{a: a, sc: bufio.NewScanner(a.in), out: out}
	titleColor.Fprintln(out, "Welcome to Sparse Matrix Calculator!")

	for {
		m.printMenu()
		choice, err := m.readLine()
		if err != nil {
			m.goodbye()
			return nil
		}

		switch choice {
		case "1":
			err = m.operation(workspace.OpAdd)
		case "2":
			err = m.operation(workspace.OpSub)
		case "3":
			err = m.operation(workspace.OpMul)
		case "4":
			var mat *sparse.Matrix
			mat, err = m.loadMatrix("Pick a matrix to analyze:")
			if mat != nil {
				printStats(out, mat)
			}
		case "5":
			m.goodbye()
			return nil
		default:
			errColor.Fprintln(out, "Oops! Please enter a number between 1 and 5.")
		}
		if errors.Is(err, errMenuClosed) {
			m.goodbye()
			return nil
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, menuRule)
	titleColor.Fprintln(m.out, "Sparse Matrix Calculator")
	fmt.Fprintln(m.out, menuRule)
	fmt.Fprintln(m.out, "1. Add matrices")
	fmt.Fprintln(m.out, "2. Subtract matrices")
	fmt.Fprintln(m.out, "3. Multiply matrices")
	fmt.Fprintln(m.out, "4. Display matrix statistics")
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprintln(m.out, menuRule)
	fmt.Fprint(m.out, "Enter your choice: ")
}

func (m *menu) goodbye() {
	fmt.Fprintln(m.out)
	okColor.Fprintln(m.out, "Thanks for using Sparse Matrix Calculator!")
}

// readLine returns the next trimmed input line or errMenuClosed.
func (m *menu) readLine() (string, error) {
	if !m.sc.Scan() {
		return "", errMenuClosed
	}

	return strings.TrimSpace(m.sc.Text()), nil
}

// operation loads two matrices, applies op and saves the result.
// Errors other than errMenuClosed are reported and swallowed so the menu
// keeps running.
func (m *menu) operation(op workspace.Operation) error {
	fmt.Fprintln(m.out, "\nLoading first matrix:")
	m1, err := m.loadMatrix("Pick the first matrix:")
	if m1 == nil {
		return err
	}
	fmt.Fprintln(m.out, "\nLoading second matrix:")
	m2, err := m.loadMatrix("Pick the second matrix:")
	if m2 == nil {
		return err
	}

	res, err := m.a.apply(m.out, op, m1, m2)
	if err != nil {
		return nil
	}
	path, err := m.a.ws.Save(res, op)
	if err != nil {
		errColor.Fprintf(m.out, "Couldn't save result: %v\n", err)
		return nil
	}
	okColor.Fprintf(m.out, "Result saved to: %s\n", path)
	printStats(m.out, res)

	return nil
}

// loadMatrix prompts until the choice names an existing file, then parses
// it. A nil matrix with nil error means the file was rejected.
func (m *menu) loadMatrix(prompt string) (*sparse.Matrix, error) {
	for {
		m.listSamples()
		fmt.Fprintf(m.out, "\n%s\nYour choice: ", prompt)
		choice, err := m.readLine()
		if err != nil {
			return nil, err
		}

		mat, path, err := m.a.ws.Load(choice)
		switch {
		case errors.Is(err, workspace.ErrNotFound):
			errColor.Fprintf(m.out, "\nOops! File '%s' not found.\n", path)
			fmt.Fprintln(m.out, "Please try again with a valid file number or path.")
			continue
		case err != nil:
			printLoadError(m.out, err)
			return nil, nil
		}
		okColor.Fprintf(m.out, "Successfully loaded: %s\n", mat)

		return mat, nil
	}
}

func (m *menu) listSamples() {
	samples := m.a.ws.Samples()
	if len(samples) == 0 {
		return
	}
	fmt.Fprintln(m.out, "\nAvailable sample files:")
	for _, s := range samples {
		status := "missing"
		if s.Exists {
			status = "ok"
		}
		fmt.Fprintf(m.out, "%d. [%s] %s\n", s.Index, status, s.Path)
	}
	fmt.Fprintf(m.out, "Tip: Enter 1-%d for sample files or type a full path\n", len(samples))
}
