package validate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"cellkit/internal/issue"
	"cellkit/internal/logger"
	"cellkit/internal/model"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Report struct {
	Issues []*issue.Issue
}

func (r *Report) Empty() bool {
	return r == nil || len(r.Issues) == 0
}

// HasKind reports whether any issue is of the given kind.
func (r *Report) HasKind(kind issue.Kind) bool {
	if r == nil {
		return false
	}
	for _, item := range r.Issues {
		if item.IsKind(kind) {
			return true
		}
	}
	return false
}

// Run walks m read-only and reports every structural problem it finds. A
// nil model yields a single undefined-kind issue.
func Run(ctx context.Context, m *model.Model) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := &Report{}
	if m == nil {
		report.Issues = append(report.Issues, issue.New(issue.KindUndefined, "no model to validate"))
		return report, nil
	}

	ctx = logger.WithKV(ctx, "model", m.Name())

	report.Issues = append(report.Issues, validateModel(m)...)
	report.Issues = append(report.Issues, validateImports(m)...)
	report.Issues = append(report.Issues, validateUnits(m)...)

	componentNames := make(map[string]struct{})
	for _, c := range m.Components() {
		if c == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Issues = append(report.Issues, validateComponent(c)...)
		if c.Name() == "" {
			continue
		}
		if _, exists := componentNames[c.Name()]; exists {
			report.Issues = append(report.Issues, componentIssue(c, fmt.Sprintf("duplicate component name: %s", c.Name())))
		}
		componentNames[c.Name()] = struct{}{}
	}

	logger.DebugKV(ctx, "validated model", "components", m.ComponentCount(), "issues", len(report.Issues))
	return report, nil
}

func validateModel(m *model.Model) []*issue.Issue {
	if problem := checkIdentifier(m.Name()); problem != "" {
		item := issue.New(issue.KindModel, "model "+problem)
		item.SetModel(m)
		return []*issue.Issue{item}
	}
	return nil
}

func validateImports(m *model.Model) []*issue.Issue {
	var issues []*issue.Issue
	for _, imp := range m.Imports() {
		if imp == nil {
			continue
		}
		if strings.TrimSpace(imp.Source()) == "" {
			item := issue.New(issue.KindImport, "import source is required")
			item.SetImport(imp)
			issues = append(issues, item)
		}
	}
	return issues
}

func validateUnits(m *model.Model) []*issue.Issue {
	var issues []*issue.Issue
	seen := make(map[string]struct{})
	for _, u := range m.AllUnits() {
		if u == nil {
			continue
		}
		if problem := checkIdentifier(u.Name()); problem != "" {
			issues = append(issues, unitsIssue(u, "units "+problem))
			continue
		}
		if _, exists := seen[u.Name()]; exists {
			issues = append(issues, unitsIssue(u, fmt.Sprintf("duplicate units name: %s", u.Name())))
		}
		seen[u.Name()] = struct{}{}
	}
	return issues
}

func validateComponent(c *model.Component) []*issue.Issue {
	var issues []*issue.Issue
	if problem := checkIdentifier(c.Name()); problem != "" {
		issues = append(issues, componentIssue(c, "component "+problem))
	}

	seen := make(map[string]struct{})
	for _, v := range c.Variables() {
		if v == nil {
			continue
		}
		if problem := checkIdentifier(v.Name()); problem != "" {
			issues = append(issues, variableIssue(issue.KindVariable, v, "variable "+problem))
			continue
		}
		if _, exists := seen[v.Name()]; exists {
			issues = append(issues, variableIssue(issue.KindVariable, v, fmt.Sprintf("duplicate variable name in component %s: %s", c.Name(), v.Name())))
		}
		seen[v.Name()] = struct{}{}
	}

	type resetKey struct {
		variable *model.Variable
		order    int
	}
	resetOrders := make(map[resetKey]struct{})
	for i, r := range c.Resets() {
		if r == nil {
			continue
		}
		issues = append(issues, validateReset(c, i, r)...)

		v := r.Variable()
		if v == nil || !r.IsOrderSet() {
			continue
		}
		key := resetKey{variable: v, order: r.Order()}
		if _, exists := resetOrders[key]; exists {
			issues = append(issues, variableIssue(issue.KindReset, v, fmt.Sprintf("component %s has more than one reset on variable %s with order %d", c.Name(), v.Name(), r.Order())))
		}
		resetOrders[key] = struct{}{}
	}

	return issues
}

func validateReset(c *model.Component, index int, r *model.Reset) []*issue.Issue {
	var issues []*issue.Issue
	label := fmt.Sprintf("reset %d in component %s", index, c.Name())

	v := r.Variable()
	switch {
	case v == nil:
		issues = append(issues, resetIssue(c, label+" does not reference a variable"))
	case !c.HasVariable(v):
		issues = append(issues, variableIssue(issue.KindReset, v, fmt.Sprintf("%s references variable %s which is not in the component", label, v.Name())))
	}
	if !r.IsOrderSet() {
		issues = append(issues, resetIssue(c, label+" does not have an order"))
	}

	whenOrders := make(map[int]struct{})
	for j, w := range r.Whens() {
		if w == nil {
			continue
		}
		whenLabel := fmt.Sprintf("when %d of %s", j, label)
		if !w.IsOrderSet() {
			issues = append(issues, whenIssue(c, whenLabel+" does not have an order"))
		} else {
			if _, exists := whenOrders[w.Order()]; exists {
				issues = append(issues, whenIssue(c, fmt.Sprintf("%s repeats order %d", whenLabel, w.Order())))
			}
			whenOrders[w.Order()] = struct{}{}
		}
		if w.Condition() == "" {
			issues = append(issues, whenIssue(c, whenLabel+" does not have a condition"))
		}
		if w.Value() == "" {
			issues = append(issues, whenIssue(c, whenLabel+" does not have a value"))
		}
	}

	return issues
}

// checkIdentifier returns a description of what is wrong with name, or "".
func checkIdentifier(name string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Sprintf("name %q is not a valid identifier", name)
	}
	return ""
}

func componentIssue(c *model.Component, description string) *issue.Issue {
	item := issue.New(issue.KindComponent, description)
	item.SetComponent(c)
	return item
}

func unitsIssue(u *model.Units, description string) *issue.Issue {
	item := issue.New(issue.KindUnits, description)
	item.SetUnits(u)
	return item
}

func variableIssue(kind issue.Kind, v *model.Variable, description string) *issue.Issue {
	item := issue.New(kind, description)
	item.SetVariable(v)
	return item
}

func resetIssue(c *model.Component, description string) *issue.Issue {
	item := issue.New(issue.KindReset, description)
	item.SetComponent(c)
	return item
}

func whenIssue(c *model.Component, description string) *issue.Issue {
	item := issue.New(issue.KindWhen, description)
	item.SetComponent(c)
	return item
}
