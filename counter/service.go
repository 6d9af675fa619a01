package counter

import (
	"github.com/weegigs/wee-counter-go/view"
	"github.com/weegigs/wee-counter-go/we"
)

type Program = we.Program[Counter]

func NewProgram(journal we.Journal, options ...we.ProgramOption[Counter]) Program {
	return we.NewProgram[Counter](journal, Reducers(), options...)
}

var Render view.Render[Counter] = View
