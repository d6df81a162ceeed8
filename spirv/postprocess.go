package spirv

// PostProcess drops decorations of ids defined only in unreachable blocks.
// It is idempotent and run by Dump.
func (b *Builder) PostProcess() {
	dead := make(map[ID]struct{})

	for _, fn := range b.module.functions {
		reachable := b.reachableBlocks(fn)

		for _, blk := range fn.blocks {
			if _, ok := reachable[blk]; ok {
				continue
			}

			dead[blk.ID()] = struct{}{}
			for _, inst := range blk.instructions {
				if inst.resultID != NoResult {
					dead[inst.resultID] = struct{}{}
				}
			}
		}
	}

	if len(dead) == 0 {
		return
	}

	kept := b.decorations[:0]

	for _, dec := range b.decorations {
		if dec.NumOperands() != 0 && dec.IsIDOperand(0) {
			if _, ok := dead[dec.IDOperand(0)]; ok {
				continue
			}
		}

		kept = append(kept, dec)
	}

	clear(b.decorations[len(kept):])
	b.decorations = kept
}

// reachableBlocks walks forward from the entry block following branch
// targets and the merge and continue targets of structured headers.
func (b *Builder) reachableBlocks(fn *Function) map[*Block]struct{} {
	seen := make(map[*Block]struct{})

	entry := fn.EntryBlock()
	if entry == nil {
		return seen
	}

	stack := []*Block{entry}

	for len(stack) != 0 {
		blk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[blk]; ok {
			continue
		}

		seen[blk] = struct{}{}

		stack = append(stack, blk.successors...)

		merge := blk.MergeInstruction()
		if merge == nil {
			continue
		}

		for i := 0; i < merge.NumOperands(); i++ {
			if !merge.IsIDOperand(i) {
				continue
			}

			if target := b.module.Instruction(merge.IDOperand(i)).block; target != nil {
				stack = append(stack, target)
			}
		}
	}

	return seen
}
