// Package wherecache keeps where mappings on disk between runs so unchanged paths do not need another p4 call.
package wherecache

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/tinylib/msgp/msgp"

	"github.com/nellielemonier/perforce-plugin/perforce/where"
)

const fileName = "where.cache"

type Cache struct {
	loc string

	mu      sync.Mutex
	records map[uint64]record
}

// Open loads the cache stored in dir. A missing cache file gives an empty cache.
func Open(dir string) (*Cache, error) {
	s := &Cache{}
	s.loc = filepath.Join(dir, fileName)
	s.records = map[uint64]record{}
	f, err := os.Open(s.loc)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("can't read where cache %v: %w", s.loc, err)
	}
	rd := msgp.NewReader(gr)
	n, err := rd.ReadArrayHeader()
	if err != nil {
		return nil, fmt.Errorf("can't read where cache %v: %w", s.loc, err)
	}
	for i := uint32(0); i < n; i++ {
		var r record
		err := r.DecodeMsg(rd)
		if err != nil {
			return nil, fmt.Errorf("can't read where cache %v: %w", s.loc, err)
		}
		s.records[r.Key] = r
	}
	return s, nil
}

func key(path string) uint64 {
	return xxhash.Sum64([]byte(path))
}

// Get returns the mapping cached for the queried path.
func (s *Cache) Get(path string) (where.WhereMapping, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[key(path)]
	if !ok || r.Path != path {
		return where.WhereMapping{}, false
	}
	return r.mapping(), true
}

func (s *Cache) Put(path string, m where.WhereMapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(path)
	s.records[k] = newRecord(k, path, m)
}

func (s *Cache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Save writes the cache to a temp file and renames it into place.
func (s *Cache) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.MkdirAll(filepath.Dir(s.loc), 0777)
	if err != nil {
		return err
	}
	f, err := os.Create(s.loc + ".tmp")
	if err != nil {
		return err
	}
	defer f.Close()
	gw := gzip.NewWriter(f)
	wr := msgp.NewWriter(gw)
	err = wr.WriteArrayHeader(uint32(len(s.records)))
	if err != nil {
		return err
	}
	for _, r := range s.records {
		r := r
		err := r.EncodeMsg(wr)
		if err != nil {
			return err
		}
	}
	err = wr.Flush()
	if err != nil {
		return err
	}
	err = gw.Close()
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	return os.Rename(s.loc+".tmp", s.loc)
}
