package wherecache

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/nellielemonier/perforce-plugin/perforce/where"
)

// record is one cached mapping as stored on disk.
type record struct {
	Key        uint64
	Path       string
	Depot      string
	Workspace  string
	Filesystem string
}

func newRecord(key uint64, path string, m where.WhereMapping) record {
	return record{
		Key:        key,
		Path:       path,
		Depot:      m.DepotPath(),
		Workspace:  m.WorkspacePath(),
		Filesystem: m.FilesystemPath(),
	}
}

func (r record) mapping() where.WhereMapping {
	return where.NewWhereMapping(r.Depot, r.Workspace, r.Filesystem)
}

func (r *record) EncodeMsg(wr *msgp.Writer) error {
	err := wr.WriteMapHeader(5)
	if err != nil {
		return err
	}
	if err := wr.WriteString("k"); err != nil {
		return err
	}
	if err := wr.WriteUint64(r.Key); err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"p", r.Path},
		{"d", r.Depot},
		{"w", r.Workspace},
		{"f", r.Filesystem},
	} {
		if err := wr.WriteString(kv[0]); err != nil {
			return err
		}
		if err := wr.WriteString(kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *record) DecodeMsg(rd *msgp.Reader) error {
	n, err := rd.ReadMapHeader()
	if err != nil {
		return err
	}
	*r = record{}
	for i := uint32(0); i < n; i++ {
		field, err := rd.ReadString()
		if err != nil {
			return err
		}
		switch field {
		case "k":
			r.Key, err = rd.ReadUint64()
		case "p":
			r.Path, err = rd.ReadString()
		case "d":
			r.Depot, err = rd.ReadString()
		case "w":
			r.Workspace, err = rd.ReadString()
		case "f":
			r.Filesystem, err = rd.ReadString()
		default:
			err = rd.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
