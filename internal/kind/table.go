package kind

// Kind constants in declaration order. The order is part of the contract:
// All, diagnostics, and snapshot tests depend on it.
const (
	Invalid Kind = iota

	// KerML root layer
	Element
	Relationship
	Namespace
	AnnotatingElement
	Comment
	Documentation
	TextualRepresentation
	Annotation
	Dependency
	Membership
	OwningMembership
	Import
	MembershipImport
	NamespaceImport
	Package
	LibraryPackage
	ElementFilterMembership

	// KerML core layer
	Type
	Classifier
	Feature
	Specialization
	Subclassification
	FeatureTyping
	Subsetting
	Redefinition
	ReferenceSubsetting
	CrossSubsetting
	Conjugation
	Disjoining
	Unioning
	Intersecting
	Differencing
	FeatureInverting
	FeatureChaining
	TypeFeaturing
	FeatureMembership
	EndFeatureMembership
	Multiplicity
	MultiplicityRange
	FeatureValue

	// KerML kernel layer
	Class
	DataType
	Structure
	Association
	AssociationStructure
	Connector
	BindingConnector
	Succession
	Behavior
	Step
	ParameterMembership
	ReturnParameterMembership
	Function
	Predicate
	Expression
	BooleanExpression
	Invariant
	ResultExpressionMembership
	Interaction
	Flow
	SuccessionFlow
	PayloadFeature
	FlowEnd
	Metaclass
	MetadataFeature
	NullExpression
	LiteralExpression
	LiteralBoolean
	LiteralString
	LiteralInteger
	LiteralRational
	LiteralInfinity
	FeatureReferenceExpression
	MetadataAccessExpression
	InstantiationExpression
	ConstructorExpression
	InvocationExpression
	OperatorExpression
	CollectExpression
	SelectExpression
	FeatureChainExpression
	IndexExpression

	// SysML v2 systems layer
	Definition
	Usage
	ReferenceUsage
	VariantMembership
	AttributeDefinition
	AttributeUsage
	EnumerationDefinition
	EnumerationUsage
	OccurrenceDefinition
	OccurrenceUsage
	LifeClass
	EventOccurrenceUsage
	ItemDefinition
	ItemUsage
	PartDefinition
	PartUsage
	PortDefinition
	PortUsage
	ConjugatedPortDefinition
	PortConjugation
	ConjugatedPortTyping
	ConnectorAsUsage
	BindingConnectorAsUsage
	SuccessionAsUsage
	ConnectionDefinition
	ConnectionUsage
	InterfaceDefinition
	InterfaceUsage
	AllocationDefinition
	AllocationUsage
	ActionDefinition
	ActionUsage
	FlowDefinition
	FlowUsage
	SuccessionFlowUsage
	PerformActionUsage
	SendActionUsage
	AcceptActionUsage
	AssignmentActionUsage
	TerminateActionUsage
	IfActionUsage
	LoopActionUsage
	WhileLoopActionUsage
	ForLoopActionUsage
	ControlNode
	ForkNode
	JoinNode
	MergeNode
	DecisionNode
	TriggerInvocationExpression
	StateDefinition
	StateUsage
	ExhibitStateUsage
	StateSubactionMembership
	TransitionUsage
	TransitionFeatureMembership
	CalculationDefinition
	CalculationUsage
	ConstraintDefinition
	ConstraintUsage
	AssertConstraintUsage
	RequirementDefinition
	RequirementUsage
	SatisfyRequirementUsage
	SubjectMembership
	ActorMembership
	StakeholderMembership
	RequirementConstraintMembership
	FramedConcernMembership
	RequirementVerificationMembership
	ConcernDefinition
	ConcernUsage
	CaseDefinition
	CaseUsage
	ObjectiveMembership
	AnalysisCaseDefinition
	AnalysisCaseUsage
	VerificationCaseDefinition
	VerificationCaseUsage
	UseCaseDefinition
	UseCaseUsage
	IncludeUseCaseUsage
	ViewDefinition
	ViewUsage
	ViewpointDefinition
	ViewpointUsage
	RenderingDefinition
	RenderingUsage
	ViewRenderingMembership
	Expose
	MembershipExpose
	NamespaceExpose
	MetadataDefinition
	MetadataUsage

	numKinds
)

var names = [numKinds]string{
	Element:                           "Element",
	Relationship:                      "Relationship",
	Namespace:                         "Namespace",
	AnnotatingElement:                 "AnnotatingElement",
	Comment:                           "Comment",
	Documentation:                     "Documentation",
	TextualRepresentation:             "TextualRepresentation",
	Annotation:                        "Annotation",
	Dependency:                        "Dependency",
	Membership:                        "Membership",
	OwningMembership:                  "OwningMembership",
	Import:                            "Import",
	MembershipImport:                  "MembershipImport",
	NamespaceImport:                   "NamespaceImport",
	Package:                           "Package",
	LibraryPackage:                    "LibraryPackage",
	ElementFilterMembership:           "ElementFilterMembership",
	Type:                              "Type",
	Classifier:                        "Classifier",
	Feature:                           "Feature",
	Specialization:                    "Specialization",
	Subclassification:                 "Subclassification",
	FeatureTyping:                     "FeatureTyping",
	Subsetting:                        "Subsetting",
	Redefinition:                      "Redefinition",
	ReferenceSubsetting:               "ReferenceSubsetting",
	CrossSubsetting:                   "CrossSubsetting",
	Conjugation:                       "Conjugation",
	Disjoining:                        "Disjoining",
	Unioning:                          "Unioning",
	Intersecting:                      "Intersecting",
	Differencing:                      "Differencing",
	FeatureInverting:                  "FeatureInverting",
	FeatureChaining:                   "FeatureChaining",
	TypeFeaturing:                     "TypeFeaturing",
	FeatureMembership:                 "FeatureMembership",
	EndFeatureMembership:              "EndFeatureMembership",
	Multiplicity:                      "Multiplicity",
	MultiplicityRange:                 "MultiplicityRange",
	FeatureValue:                      "FeatureValue",
	Class:                             "Class",
	DataType:                          "DataType",
	Structure:                         "Structure",
	Association:                       "Association",
	AssociationStructure:              "AssociationStructure",
	Connector:                         "Connector",
	BindingConnector:                  "BindingConnector",
	Succession:                        "Succession",
	Behavior:                          "Behavior",
	Step:                              "Step",
	ParameterMembership:               "ParameterMembership",
	ReturnParameterMembership:         "ReturnParameterMembership",
	Function:                          "Function",
	Predicate:                         "Predicate",
	Expression:                        "Expression",
	BooleanExpression:                 "BooleanExpression",
	Invariant:                         "Invariant",
	ResultExpressionMembership:        "ResultExpressionMembership",
	Interaction:                       "Interaction",
	Flow:                              "Flow",
	SuccessionFlow:                    "SuccessionFlow",
	PayloadFeature:                    "PayloadFeature",
	FlowEnd:                           "FlowEnd",
	Metaclass:                         "Metaclass",
	MetadataFeature:                   "MetadataFeature",
	NullExpression:                    "NullExpression",
	LiteralExpression:                 "LiteralExpression",
	LiteralBoolean:                    "LiteralBoolean",
	LiteralString:                     "LiteralString",
	LiteralInteger:                    "LiteralInteger",
	LiteralRational:                   "LiteralRational",
	LiteralInfinity:                   "LiteralInfinity",
	FeatureReferenceExpression:        "FeatureReferenceExpression",
	MetadataAccessExpression:          "MetadataAccessExpression",
	InstantiationExpression:           "InstantiationExpression",
	ConstructorExpression:             "ConstructorExpression",
	InvocationExpression:              "InvocationExpression",
	OperatorExpression:                "OperatorExpression",
	CollectExpression:                 "CollectExpression",
	SelectExpression:                  "SelectExpression",
	FeatureChainExpression:            "FeatureChainExpression",
	IndexExpression:                   "IndexExpression",
	Definition:                        "Definition",
	Usage:                             "Usage",
	ReferenceUsage:                    "ReferenceUsage",
	VariantMembership:                 "VariantMembership",
	AttributeDefinition:               "AttributeDefinition",
	AttributeUsage:                    "AttributeUsage",
	EnumerationDefinition:             "EnumerationDefinition",
	EnumerationUsage:                  "EnumerationUsage",
	OccurrenceDefinition:              "OccurrenceDefinition",
	OccurrenceUsage:                   "OccurrenceUsage",
	LifeClass:                         "LifeClass",
	EventOccurrenceUsage:              "EventOccurrenceUsage",
	ItemDefinition:                    "ItemDefinition",
	ItemUsage:                         "ItemUsage",
	PartDefinition:                    "PartDefinition",
	PartUsage:                         "PartUsage",
	PortDefinition:                    "PortDefinition",
	PortUsage:                         "PortUsage",
	ConjugatedPortDefinition:          "ConjugatedPortDefinition",
	PortConjugation:                   "PortConjugation",
	ConjugatedPortTyping:              "ConjugatedPortTyping",
	ConnectorAsUsage:                  "ConnectorAsUsage",
	BindingConnectorAsUsage:           "BindingConnectorAsUsage",
	SuccessionAsUsage:                 "SuccessionAsUsage",
	ConnectionDefinition:              "ConnectionDefinition",
	ConnectionUsage:                   "ConnectionUsage",
	InterfaceDefinition:               "InterfaceDefinition",
	InterfaceUsage:                    "InterfaceUsage",
	AllocationDefinition:              "AllocationDefinition",
	AllocationUsage:                   "AllocationUsage",
	ActionDefinition:                  "ActionDefinition",
	ActionUsage:                       "ActionUsage",
	FlowDefinition:                    "FlowDefinition",
	FlowUsage:                         "FlowUsage",
	SuccessionFlowUsage:               "SuccessionFlowUsage",
	PerformActionUsage:                "PerformActionUsage",
	SendActionUsage:                   "SendActionUsage",
	AcceptActionUsage:                 "AcceptActionUsage",
	AssignmentActionUsage:             "AssignmentActionUsage",
	TerminateActionUsage:              "TerminateActionUsage",
	IfActionUsage:                     "IfActionUsage",
	LoopActionUsage:                   "LoopActionUsage",
	WhileLoopActionUsage:              "WhileLoopActionUsage",
	ForLoopActionUsage:                "ForLoopActionUsage",
	ControlNode:                       "ControlNode",
	ForkNode:                          "ForkNode",
	JoinNode:                          "JoinNode",
	MergeNode:                         "MergeNode",
	DecisionNode:                      "DecisionNode",
	TriggerInvocationExpression:       "TriggerInvocationExpression",
	StateDefinition:                   "StateDefinition",
	StateUsage:                        "StateUsage",
	ExhibitStateUsage:                 "ExhibitStateUsage",
	StateSubactionMembership:          "StateSubactionMembership",
	TransitionUsage:                   "TransitionUsage",
	TransitionFeatureMembership:       "TransitionFeatureMembership",
	CalculationDefinition:             "CalculationDefinition",
	CalculationUsage:                  "CalculationUsage",
	ConstraintDefinition:              "ConstraintDefinition",
	ConstraintUsage:                   "ConstraintUsage",
	AssertConstraintUsage:             "AssertConstraintUsage",
	RequirementDefinition:             "RequirementDefinition",
	RequirementUsage:                  "RequirementUsage",
	SatisfyRequirementUsage:           "SatisfyRequirementUsage",
	SubjectMembership:                 "SubjectMembership",
	ActorMembership:                   "ActorMembership",
	StakeholderMembership:             "StakeholderMembership",
	RequirementConstraintMembership:   "RequirementConstraintMembership",
	FramedConcernMembership:           "FramedConcernMembership",
	RequirementVerificationMembership: "RequirementVerificationMembership",
	ConcernDefinition:                 "ConcernDefinition",
	ConcernUsage:                      "ConcernUsage",
	CaseDefinition:                    "CaseDefinition",
	CaseUsage:                         "CaseUsage",
	ObjectiveMembership:               "ObjectiveMembership",
	AnalysisCaseDefinition:            "AnalysisCaseDefinition",
	AnalysisCaseUsage:                 "AnalysisCaseUsage",
	VerificationCaseDefinition:        "VerificationCaseDefinition",
	VerificationCaseUsage:             "VerificationCaseUsage",
	UseCaseDefinition:                 "UseCaseDefinition",
	UseCaseUsage:                      "UseCaseUsage",
	IncludeUseCaseUsage:               "IncludeUseCaseUsage",
	ViewDefinition:                    "ViewDefinition",
	ViewUsage:                         "ViewUsage",
	ViewpointDefinition:               "ViewpointDefinition",
	ViewpointUsage:                    "ViewpointUsage",
	RenderingDefinition:               "RenderingDefinition",
	RenderingUsage:                    "RenderingUsage",
	ViewRenderingMembership:           "ViewRenderingMembership",
	Expose:                            "Expose",
	MembershipExpose:                  "MembershipExpose",
	NamespaceExpose:                   "NamespaceExpose",
	MetadataDefinition:                "MetadataDefinition",
	MetadataUsage:                     "MetadataUsage",
}

// directSupertypes is the declared generalization table. Entries list
// parents in the order the metamodel declares them.
var directSupertypes = [numKinds][]Kind{
	Relationship:                      {Element},
	Namespace:                         {Element},
	AnnotatingElement:                 {Element},
	Comment:                           {AnnotatingElement},
	Documentation:                     {Comment},
	TextualRepresentation:             {AnnotatingElement},
	Annotation:                        {Relationship},
	Dependency:                        {Relationship},
	Membership:                        {Relationship},
	OwningMembership:                  {Membership},
	Import:                            {Relationship},
	MembershipImport:                  {Import},
	NamespaceImport:                   {Import},
	Package:                           {Namespace},
	LibraryPackage:                    {Package},
	ElementFilterMembership:           {OwningMembership},
	Type:                              {Namespace},
	Classifier:                        {Type},
	Feature:                           {Type},
	Specialization:                    {Relationship},
	Subclassification:                 {Specialization},
	FeatureTyping:                     {Specialization},
	Subsetting:                        {Specialization},
	Redefinition:                      {Subsetting},
	ReferenceSubsetting:               {Subsetting},
	CrossSubsetting:                   {Subsetting},
	Conjugation:                       {Relationship},
	Disjoining:                        {Relationship},
	Unioning:                          {Relationship},
	Intersecting:                      {Relationship},
	Differencing:                      {Relationship},
	FeatureInverting:                  {Relationship},
	FeatureChaining:                   {Relationship},
	TypeFeaturing:                     {Relationship},
	FeatureMembership:                 {OwningMembership},
	EndFeatureMembership:              {FeatureMembership},
	Multiplicity:                      {Feature},
	MultiplicityRange:                 {Multiplicity},
	FeatureValue:                      {OwningMembership},
	Class:                             {Classifier},
	DataType:                          {Classifier},
	Structure:                         {Class},
	Association:                       {Classifier, Relationship},
	AssociationStructure:              {Association, Structure},
	Connector:                         {Feature, Relationship},
	BindingConnector:                  {Connector},
	Succession:                        {Connector},
	Behavior:                          {Class},
	Step:                              {Feature},
	ParameterMembership:               {FeatureMembership},
	ReturnParameterMembership:         {ParameterMembership},
	Function:                          {Behavior},
	Predicate:                         {Function},
	Expression:                        {Step},
	BooleanExpression:                 {Expression},
	Invariant:                         {BooleanExpression},
	ResultExpressionMembership:        {FeatureMembership},
	Interaction:                       {Association, Behavior},
	Flow:                              {Connector, Step},
	SuccessionFlow:                    {Flow, Succession},
	PayloadFeature:                    {Feature},
	FlowEnd:                           {Feature},
	Metaclass:                         {Structure},
	MetadataFeature:                   {Feature, AnnotatingElement},
	NullExpression:                    {Expression},
	LiteralExpression:                 {Expression},
	LiteralBoolean:                    {LiteralExpression},
	LiteralString:                     {LiteralExpression},
	LiteralInteger:                    {LiteralExpression},
	LiteralRational:                   {LiteralExpression},
	LiteralInfinity:                   {LiteralExpression},
	FeatureReferenceExpression:        {Expression},
	MetadataAccessExpression:          {Expression},
	InstantiationExpression:           {Expression},
	ConstructorExpression:             {InstantiationExpression},
	InvocationExpression:              {InstantiationExpression},
	OperatorExpression:                {InvocationExpression},
	CollectExpression:                 {OperatorExpression},
	SelectExpression:                  {OperatorExpression},
	FeatureChainExpression:            {OperatorExpression},
	IndexExpression:                   {OperatorExpression},
	Definition:                        {Classifier},
	Usage:                             {Feature},
	ReferenceUsage:                    {Usage},
	VariantMembership:                 {OwningMembership},
	AttributeDefinition:               {Definition, DataType},
	AttributeUsage:                    {Usage},
	EnumerationDefinition:             {AttributeDefinition},
	EnumerationUsage:                  {AttributeUsage},
	OccurrenceDefinition:              {Definition, Class},
	OccurrenceUsage:                   {Usage},
	LifeClass:                         {Class},
	EventOccurrenceUsage:              {OccurrenceUsage},
	ItemDefinition:                    {OccurrenceDefinition, Structure},
	ItemUsage:                         {OccurrenceUsage},
	PartDefinition:                    {ItemDefinition},
	PartUsage:                         {ItemUsage},
	PortDefinition:                    {OccurrenceDefinition, Structure},
	PortUsage:                         {OccurrenceUsage},
	ConjugatedPortDefinition:          {PortDefinition},
	PortConjugation:                   {Conjugation},
	ConjugatedPortTyping:              {FeatureTyping},
	ConnectorAsUsage:                  {Usage, Connector},
	BindingConnectorAsUsage:           {ConnectorAsUsage, BindingConnector},
	SuccessionAsUsage:                 {ConnectorAsUsage, Succession},
	ConnectionDefinition:              {PartDefinition, AssociationStructure},
	ConnectionUsage:                   {ConnectorAsUsage, PartUsage},
	InterfaceDefinition:               {ConnectionDefinition},
	InterfaceUsage:                    {ConnectionUsage},
	AllocationDefinition:              {ConnectionDefinition},
	AllocationUsage:                   {ConnectionUsage},
	ActionDefinition:                  {OccurrenceDefinition, Behavior},
	ActionUsage:                       {OccurrenceUsage, Step},
	FlowDefinition:                    {ActionDefinition, Interaction},
	FlowUsage:                         {ConnectorAsUsage, ActionUsage, Flow},
	SuccessionFlowUsage:               {FlowUsage, SuccessionFlow},
	PerformActionUsage:                {ActionUsage, EventOccurrenceUsage},
	SendActionUsage:                   {ActionUsage},
	AcceptActionUsage:                 {ActionUsage},
	AssignmentActionUsage:             {ActionUsage},
	TerminateActionUsage:              {ActionUsage},
	IfActionUsage:                     {ActionUsage},
	LoopActionUsage:                   {ActionUsage},
	WhileLoopActionUsage:              {LoopActionUsage},
	ForLoopActionUsage:                {LoopActionUsage},
	ControlNode:                       {ActionUsage},
	ForkNode:                          {ControlNode},
	JoinNode:                          {ControlNode},
	MergeNode:                         {ControlNode},
	DecisionNode:                      {ControlNode},
	TriggerInvocationExpression:       {InvocationExpression},
	StateDefinition:                   {ActionDefinition},
	StateUsage:                        {ActionUsage},
	ExhibitStateUsage:                 {StateUsage, PerformActionUsage},
	StateSubactionMembership:          {FeatureMembership},
	TransitionUsage:                   {ActionUsage},
	TransitionFeatureMembership:       {FeatureMembership},
	CalculationDefinition:             {ActionDefinition, Function},
	CalculationUsage:                  {ActionUsage, Expression},
	ConstraintDefinition:              {OccurrenceDefinition, Predicate},
	ConstraintUsage:                   {OccurrenceUsage, BooleanExpression},
	AssertConstraintUsage:             {ConstraintUsage, Invariant},
	RequirementDefinition:             {ConstraintDefinition},
	RequirementUsage:                  {ConstraintUsage},
	SatisfyRequirementUsage:           {RequirementUsage, AssertConstraintUsage},
	SubjectMembership:                 {ParameterMembership},
	ActorMembership:                   {ParameterMembership},
	StakeholderMembership:             {ParameterMembership},
	RequirementConstraintMembership:   {FeatureMembership},
	FramedConcernMembership:           {RequirementConstraintMembership},
	RequirementVerificationMembership: {RequirementConstraintMembership},
	ConcernDefinition:                 {RequirementDefinition},
	ConcernUsage:                      {RequirementUsage},
	CaseDefinition:                    {CalculationDefinition},
	CaseUsage:                         {CalculationUsage},
	ObjectiveMembership:               {FeatureMembership},
	AnalysisCaseDefinition:            {CaseDefinition},
	AnalysisCaseUsage:                 {CaseUsage},
	VerificationCaseDefinition:        {CaseDefinition},
	VerificationCaseUsage:             {CaseUsage},
	UseCaseDefinition:                 {CaseDefinition},
	UseCaseUsage:                      {CaseUsage},
	IncludeUseCaseUsage:               {UseCaseUsage, PerformActionUsage},
	ViewDefinition:                    {PartDefinition},
	ViewUsage:                         {PartUsage},
	ViewpointDefinition:               {RequirementDefinition},
	ViewpointUsage:                    {RequirementUsage},
	RenderingDefinition:               {PartDefinition},
	RenderingUsage:                    {PartUsage},
	ViewRenderingMembership:           {FeatureMembership},
	Expose:                            {Import},
	MembershipExpose:                  {MembershipImport, Expose},
	NamespaceExpose:                   {NamespaceImport, Expose},
	MetadataDefinition:                {ItemDefinition, Metaclass},
	MetadataUsage:                     {ItemUsage, MetadataFeature},
}
