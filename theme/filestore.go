package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yllada/theme-toggle/common"
)

// FileStore is a KeyStore persisted as a YAML document mapping key paths to
// named integer values:
//
//	Software\Microsoft\Windows\CurrentVersion\Themes\Personalize:
//	  AppsUseLightTheme: 1
//	  SystemUsesLightTheme: 1
//
// It stands in for the registry on platforms without one.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore backed by path. The file is created on
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// document is the on-disk layout. Values are kept as yaml nodes so a
// malformed entry can be reported per value rather than failing the load.
type document map[string]map[string]yaml.Node

func (f *FileStore) load() (document, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return document{}, nil
	}
	if errors.Is(err, os.ErrPermission) {
		return nil, fmt.Errorf("%w: %s", common.ErrAccessDenied, f.path)
	}
	if err != nil {
		return nil, err
	}

	doc := document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrMalformedValue, f.path, err)
	}
	return doc, nil
}

func (f *FileStore) save(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error serializing theme state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("error creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".personalize-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Open implements KeyStore. Opening for read a path that has no values is
// not an error; reads from it report ErrKeyNotFound.
func (f *FileStore) Open(path string, access Access) (Key, error) {
	return &fileKey{store: f, path: path, access: access}, nil
}

type fileKey struct {
	store  *FileStore
	path   string
	access Access
}

func (k *fileKey) GetInteger(name string) (uint64, error) {
	k.store.mu.Lock()
	defer k.store.mu.Unlock()

	doc, err := k.store.load()
	if err != nil {
		return 0, err
	}

	node, ok := doc[k.path][name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", common.ErrKeyNotFound, name)
	}

	var value uint64
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" || node.Decode(&value) != nil {
		return 0, fmt.Errorf("%w: %s", common.ErrMalformedValue, name)
	}
	return value, nil
}

func (k *fileKey) SetInteger(name string, value uint32) error {
	if k.access != AccessWrite {
		return fmt.Errorf("%w: %s opened read-only", common.ErrAccessDenied, k.path)
	}

	k.store.mu.Lock()
	defer k.store.mu.Unlock()

	doc, err := k.store.load()
	if err != nil && !errors.Is(err, common.ErrMalformedValue) {
		return err
	}
	if doc == nil {
		// Unparseable file: start over rather than refuse every write.
		doc = document{}
	}

	if doc[k.path] == nil {
		doc[k.path] = map[string]yaml.Node{}
	}
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return err
	}
	doc[k.path][name] = node

	return k.store.save(doc)
}

func (k *fileKey) Close() error {
	return nil
}
