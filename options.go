package pretzyl

// An Option customizes an interpreter at construction time.
type Option interface{ apply(p *Pretzyl) }

var defaults = []Option{
	stackLimitOption(256),
	stackDepthOption(10),
	infLimitOption(256),
	bracketsOption{'(', ')'},
}

func (p *Pretzyl) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(p)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(p *Pretzyl) {
	p.logfn = logfn
}

type stackLimitOption int
type stackDepthOption int
type infLimitOption int
type bracketsOption struct{ open, close rune }
type macrosOption map[string]string
type operatorsOption map[string]*Op
type operatorPathOption string

func (limit stackLimitOption) apply(p *Pretzyl) { p.stackLimit = int(limit) }
func (depth stackDepthOption) apply(p *Pretzyl) { p.stackDepth = int(depth) }
func (limit infLimitOption) apply(p *Pretzyl)   { p.infLimit = int(limit) }

func (b bracketsOption) apply(p *Pretzyl) {
	p.openBracket = b.open
	p.closeBracket = b.close
}

func (macros macrosOption) apply(p *Pretzyl) {
	for name, expansion := range macros {
		p.macros[name] = expansion
	}
}

func (ops operatorsOption) apply(p *Pretzyl) {
	for name, op := range ops {
		p.ops[name] = op
	}
}

func (path operatorPathOption) apply(p *Pretzyl) { p.opPath = string(path) }
