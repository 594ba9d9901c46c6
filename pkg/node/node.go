// Package node defines the closed enumeration of syntactic node categories
// tagging the parser's output tree. Like pkg/token, this core treats parse
// trees as opaque handles (the tree-walking evaluator is out of scope) but
// must still publish the tag values the parser and evaluator share.
package node

// Type identifies the category of a single parse-tree node.
type Type int

// Base is the first value in the node category range, disjoint from the
// token category range (pkg/token, base 512) so a single tagged handle can
// be told apart by a range check alone.
const Base Type = 1024

// Node categories, grouped by the grammar section they belong to: literal
// aggregates, expressions by ascending precedence (primary binds tightest,
// expression loosest), statements, then external (translation-unit level)
// declarations.
const (
	ListElementList Type = Base + iota
	List
	DictElement
	DictElementList
	Dict

	PrimaryExpression
	PostfixExpression
	ArgumentExpressionList
	UnaryExpression
	UnaryOperator
	MultiplicativeExpression
	AdditiveExpression
	ShiftExpression
	RelationalExpression
	EqualityExpression
	AndExpression
	ExclusiveOrExpression
	InclusiveOrExpression
	LogicalAndExpression
	LogicalOrExpression
	ConditionalExpression
	AssignmentExpression
	AssignmentOperator
	Expression

	Statement
	CompoundStatement
	StatementList
	ExpressionStatement
	SelectionStatement
	IterationStatement
	JumpStatement

	TranslationUnit
	ExternalDeclaration
	IdentifierList
	FunctionDefinition

	end // sentinel, not a real node category
)

var names = map[Type]string{
	ListElementList:          "LIST_ELEMENT_LIST",
	List:                     "LIST",
	DictElement:              "DICT_ELEMENT",
	DictElementList:          "DICT_ELEMENT_LIST",
	Dict:                     "DICT",
	PrimaryExpression:        "PRIMARY_EXPRESSION",
	PostfixExpression:        "POSTFIX_EXPRESSION",
	ArgumentExpressionList:   "ARGUMENT_EXPRESSION_LIST",
	UnaryExpression:          "UNARY_EXPRESSION",
	UnaryOperator:            "UNARY_OPERATOR",
	MultiplicativeExpression: "MULTIPLICATIVE_EXPRESSION",
	AdditiveExpression:       "ADDITIVE_EXPRESSION",
	ShiftExpression:          "SHIFT_EXPRESSION",
	RelationalExpression:     "RELATIONAL_EXPRESSION",
	EqualityExpression:       "EQUALITY_EXPRESSION",
	AndExpression:            "AND_EXPRESSION",
	ExclusiveOrExpression:    "EXCLUSIVE_OR_EXPRESSION",
	InclusiveOrExpression:    "INCLUSIVE_OR_EXPRESSION",
	LogicalAndExpression:     "LOGICAL_AND_EXPRESSION",
	LogicalOrExpression:      "LOGICAL_OR_EXPRESSION",
	ConditionalExpression:    "CONDITIONAL_EXPRESSION",
	AssignmentExpression:     "ASSIGNMENT_EXPRESSION",
	AssignmentOperator:       "ASSIGNMENT_OPERATOR",
	Expression:               "EXPRESSION",
	Statement:                "STATEMENT",
	CompoundStatement:        "COMPOUND_STATEMENT",
	StatementList:            "STATEMENT_LIST",
	ExpressionStatement:      "EXPRESSION_STATEMENT",
	SelectionStatement:       "SELECTION_STATEMENT",
	IterationStatement:       "ITERATION_STATEMENT",
	JumpStatement:            "JUMP_STATEMENT",
	TranslationUnit:          "TRANSLATION_UNIT",
	ExternalDeclaration:      "EXTERNAL_DECLARATION",
	IdentifierList:           "IDENTIFIER_LIST",
	FunctionDefinition:       "FUNCTION_DEFINITION",
}

// String returns the canonical name of a node category, or "UNKNOWN" for a
// value outside this package's range.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsValid reports whether t falls within the node category range.
func (t Type) IsValid() bool {
	return t >= Base && t < end
}
