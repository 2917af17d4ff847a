package builder

import (
	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// Tree operations. Every mutation returns a new slice with new section and
// column values along the touched branch; the input is never mutated, so a
// consuming view layer's change detection stays reliable.

// AddSection appends a new single-column section to the end.
func AddSection(sections []Section) []Section {
	out := copySections(sections)
	return append(out, NewSection())
}

// DeleteSection removes the section with the given id. The second return
// reports whether anything was removed.
func DeleteSection(sections []Section, sectionId string) ([]Section, bool) {
	out := make([]Section, 0, len(sections))
	removed := false
	for _, s := range sections {
		if s.Id == sectionId {
			removed = true
			continue
		}
		out = append(out, copySection(s))
	}
	return out, removed
}

// AddColumn appends a new column to the section and reflows every sibling
// width to 100/n.
func AddColumn(sections []Section, sectionId string) ([]Section, bool) {
	out := copySections(sections)
	for i := range out {
		if out[i].Id != sectionId {
			continue
		}
		out[i].Columns = append(out[i].Columns, NewColumn(0))
		reflow(out[i].Columns)
		return out, true
	}
	return out, false
}

// DeleteColumn removes a column and reflows the remaining widths. A section
// keeps a floor of one column: deleting the last one is a no-op.
func DeleteColumn(sections []Section, sectionId, columnId string) ([]Section, bool) {
	out := copySections(sections)
	for i := range out {
		if out[i].Id != sectionId {
			continue
		}
		if len(out[i].Columns) <= 1 {
			return out, false
		}
		cols := make([]Column, 0, len(out[i].Columns)-1)
		removed := false
		for _, c := range out[i].Columns {
			if c.Id == columnId {
				removed = true
				continue
			}
			cols = append(cols, c)
		}
		if !removed {
			return out, false
		}
		reflow(cols)
		out[i].Columns = cols
		return out, true
	}
	return out, false
}

// AddBlock constructs a block of the given type via the factory and appends
// it to the column. Returns the created block for selection purposes.
func AddBlock(sections []Section, sectionId, columnId string, t blocks.BlockType) ([]Section, blocks.Block, bool) {
	out := copySections(sections)
	for i := range out {
		if out[i].Id != sectionId {
			continue
		}
		for j := range out[i].Columns {
			if out[i].Columns[j].Id != columnId {
				continue
			}
			b := blocks.New(t)
			out[i].Columns[j].Blocks = append(out[i].Columns[j].Blocks, b)
			return out, b, true
		}
	}
	return out, blocks.Block{}, false
}

// UpdateBlock shallow-merges the patch into the matching block.
func UpdateBlock(sections []Section, sectionId, columnId, blockId string, patch blocks.Patch) ([]Section, bool) {
	out := copySections(sections)
	for i := range out {
		if out[i].Id != sectionId {
			continue
		}
		for j := range out[i].Columns {
			if out[i].Columns[j].Id != columnId {
				continue
			}
			for k := range out[i].Columns[j].Blocks {
				if out[i].Columns[j].Blocks[k].Id != blockId {
					continue
				}
				out[i].Columns[j].Blocks[k] = patch.Apply(out[i].Columns[j].Blocks[k])
				return out, true
			}
		}
	}
	return out, false
}

// DeleteBlock removes the block from its column.
func DeleteBlock(sections []Section, sectionId, columnId, blockId string) ([]Section, bool) {
	out := copySections(sections)
	for i := range out {
		if out[i].Id != sectionId {
			continue
		}
		for j := range out[i].Columns {
			if out[i].Columns[j].Id != columnId {
				continue
			}
			bs := make([]blocks.Block, 0, len(out[i].Columns[j].Blocks))
			removed := false
			for _, b := range out[i].Columns[j].Blocks {
				if b.Id == blockId {
					removed = true
					continue
				}
				bs = append(bs, b)
			}
			out[i].Columns[j].Blocks = bs
			return out, removed
		}
	}
	return out, false
}

// MoveSection reorders sections by index, splicing the moved section at the
// drop index.
func MoveSection(sections []Section, from, to int) []Section {
	out := copySections(sections)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	s := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := make([]Section, 0, len(out)+1)
	rest = append(rest, out[:to]...)
	rest = append(rest, s)
	rest = append(rest, out[to:]...)
	return rest
}

// MoveBlock removes a block from its source column and splices it into the
// target column at the drop index. Source and target may live in different
// sections.
func MoveBlock(sections []Section, blockId, targetSectionId, targetColumnId string, index int) ([]Section, bool) {
	out := copySections(sections)

	var moved *blocks.Block
	for i := range out {
		for j := range out[i].Columns {
			for k := range out[i].Columns[j].Blocks {
				if out[i].Columns[j].Blocks[k].Id == blockId {
					b := out[i].Columns[j].Blocks[k]
					moved = &b
					out[i].Columns[j].Blocks = append(
						out[i].Columns[j].Blocks[:k],
						out[i].Columns[j].Blocks[k+1:]...,
					)
					break
				}
			}
			if moved != nil {
				break
			}
		}
		if moved != nil {
			break
		}
	}
	if moved == nil {
		return out, false
	}

	for i := range out {
		if out[i].Id != targetSectionId {
			continue
		}
		for j := range out[i].Columns {
			if out[i].Columns[j].Id != targetColumnId {
				continue
			}
			bs := out[i].Columns[j].Blocks
			if index < 0 {
				index = 0
			}
			if index > len(bs) {
				index = len(bs)
			}
			spliced := make([]blocks.Block, 0, len(bs)+1)
			spliced = append(spliced, bs[:index]...)
			spliced = append(spliced, *moved)
			spliced = append(spliced, bs[index:]...)
			out[i].Columns[j].Blocks = spliced
			return out, true
		}
	}
	return out, false
}

func reflow(cols []Column) {
	n := len(cols)
	if n == 0 {
		return
	}
	w := 100.0 / float64(n)
	for i := range cols {
		cols[i].Width = w
	}
}

func copySections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = copySection(s)
	}
	return out
}

func copySection(s Section) Section {
	cols := make([]Column, len(s.Columns))
	for i, c := range s.Columns {
		bs := make([]blocks.Block, len(c.Blocks))
		copy(bs, c.Blocks)
		c.Blocks = bs
		cols[i] = c
	}
	s.Columns = cols
	return s
}
