package testutil

// FakeFS is an in-memory convargs.FileSystem backed by explicit file and
// directory path sets. It keeps path-resolution table tests free of real
// filesystem fixtures.
type FakeFS struct {
	files map[string]struct{}
	dirs  map[string]struct{}
	wd    string
}

// NewFakeFS builds a FakeFS containing the given files and directories. The
// working directory "." is always present as a directory.
func NewFakeFS(files, dirs []string) *FakeFS {
	fs := &FakeFS{
		files: make(map[string]struct{}, len(files)),
		dirs:  make(map[string]struct{}, len(dirs)+1),
		wd:    "/work",
	}
	fs.dirs["."] = struct{}{}
	for _, f := range files {
		fs.files[f] = struct{}{}
	}
	for _, d := range dirs {
		fs.dirs[d] = struct{}{}
	}
	return fs
}

// Exists implements convargs.FileSystem.
func (f *FakeFS) Exists(path string) bool {
	if _, ok := f.files[path]; ok {
		return true
	}
	_, ok := f.dirs[path]
	return ok
}

// IsDir implements convargs.FileSystem.
func (f *FakeFS) IsDir(path string) bool {
	_, ok := f.dirs[path]
	return ok
}

// Getwd implements convargs.FileSystem.
func (f *FakeFS) Getwd() (string, error) {
	return f.wd, nil
}
