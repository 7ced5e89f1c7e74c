package fdpath_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/fdpath"
)

func ExamplePath() {
	f, err := os.Create(filepath.Join(os.TempDir(), "example.txt"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	defer os.Remove(f.Name())

	path, err := fdpath.Path(f)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(filepath.Base(path))
	// Output: example.txt
}

func ExamplePath_closed() {
	f, err := os.Create(filepath.Join(os.TempDir(), "example.txt"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	f.Close()

	_, err = fdpath.Path(f)
	fmt.Println(errors.Is(err, fdpath.ErrClosed))
	// Output: true
}

func ExampleWrap() {
	f, err := os.Create(filepath.Join(os.TempDir(), "example.txt"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	defer os.Remove(f.Name())

	h := fdpath.Wrap(f)
	path, err := h.Path()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(filepath.Base(path))
	// Output: example.txt
}
