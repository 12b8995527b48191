package generate

import (
	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"
)

// Verify checks the structural well-formedness of a generated module: every
// block of every defined function ends in exactly one terminator, every branch
// targets a block of the same function and no branch targets an entry block.
func Verify(m *ir.Module) error {
	for _, fn := range m.Funcs {
		if len(fn.Blocks) == 0 {
			// declaration
			continue
		}

		if err := verifyFunc(fn); err != nil {
			return errors.Wrapf(err, "function @%s", fn.Name())
		}
	}

	return nil
}

func verifyFunc(fn *ir.Func) error {
	owned := make(map[*ir.Block]bool, len(fn.Blocks))
	for _, block := range fn.Blocks {
		owned[block] = true
	}

	for _, block := range fn.Blocks {
		if block.Term == nil {
			return errors.Errorf("block %%%s has no terminator", block.Name())
		}

		for _, succ := range successors(block) {
			if !owned[succ] {
				return errors.Errorf("block %%%s branches to %%%s outside of the function", block.Name(), succ.Name())
			}
		}
	}

	if preds := predecessors(fn)[fn.Blocks[0]]; len(preds) > 0 {
		return errors.Errorf("entry block %%%s is the target of a branch", fn.Blocks[0].Name())
	}

	return nil
}

// successors returns the blocks the terminator of block may transfer control
// to.
func successors(block *ir.Block) []*ir.Block {
	if block.Term == nil {
		return nil
	}

	return block.Term.Succs()
}

// predecessors maps each block of fn to the blocks branching to it.
func predecessors(fn *ir.Func) map[*ir.Block][]*ir.Block {
	preds := make(map[*ir.Block][]*ir.Block)
	for _, block := range fn.Blocks {
		for _, succ := range successors(block) {
			preds[succ] = append(preds[succ], block)
		}
	}

	return preds
}
