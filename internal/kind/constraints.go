package kind

// endpoint holds the minimum kinds that the source and target of a
// relationship kind must conform to.
type endpoint struct {
	source Kind
	target Kind
}

// universal applies to relationship kinds without an entry in endpoints.
var universal = endpoint{source: Element, target: Element}

var endpoints = map[Kind]endpoint{
	Relationship: {Element, Element},
	Annotation:   {AnnotatingElement, Element},
	Dependency:   {Element, Element},

	// Membership and import
	Membership:              {Namespace, Element},
	OwningMembership:        {Namespace, Element},
	ElementFilterMembership: {Namespace, Expression},
	Import:                  {Namespace, Element},
	MembershipImport:        {Namespace, Membership},
	NamespaceImport:         {Namespace, Namespace},
	Expose:                  {ViewUsage, Element},
	MembershipExpose:        {ViewUsage, Membership},
	NamespaceExpose:         {ViewUsage, Namespace},
	VariantMembership:       {Type, Usage},
	FeatureValue:            {Feature, Expression},

	// Specialization family
	Specialization:       {Type, Type},
	Subclassification:    {Classifier, Classifier},
	FeatureTyping:        {Feature, Type},
	ConjugatedPortTyping: {Feature, ConjugatedPortDefinition},
	Subsetting:           {Feature, Feature},
	Redefinition:         {Feature, Feature},
	ReferenceSubsetting:  {Feature, Feature},
	CrossSubsetting:      {Feature, Feature},
	Conjugation:          {Type, Type},
	PortConjugation:      {ConjugatedPortDefinition, PortDefinition},
	Disjoining:           {Type, Type},
	Unioning:             {Type, Type},
	Intersecting:         {Type, Type},
	Differencing:         {Type, Type},
	FeatureInverting:     {Feature, Feature},
	FeatureChaining:      {Feature, Feature},
	TypeFeaturing:        {Feature, Type},

	// Feature membership family. Owners are Types so that usages such as
	// CalculationUsage or StateUsage may own the same memberships as their
	// definitions.
	FeatureMembership:                 {Type, Feature},
	EndFeatureMembership:              {Type, Feature},
	ParameterMembership:               {Type, Feature},
	ReturnParameterMembership:         {Type, Feature},
	ResultExpressionMembership:        {Type, Expression},
	SubjectMembership:                 {Type, Usage},
	ActorMembership:                   {Type, PartUsage},
	StakeholderMembership:             {Type, PartUsage},
	ObjectiveMembership:               {Type, RequirementUsage},
	RequirementConstraintMembership:   {Type, ConstraintUsage},
	FramedConcernMembership:           {Type, ConcernUsage},
	RequirementVerificationMembership: {Type, RequirementUsage},
	StateSubactionMembership:          {Type, ActionUsage},
	TransitionFeatureMembership:       {Type, Step},
	ViewRenderingMembership:           {Type, RenderingUsage},

	// Associations relate types; connectors relate features.
	Association:             {Type, Type},
	AssociationStructure:    {Type, Type},
	Interaction:             {Type, Type},
	ConnectionDefinition:    {Type, Type},
	InterfaceDefinition:     {Type, Type},
	AllocationDefinition:    {Type, Type},
	FlowDefinition:          {Type, Type},
	Connector:               {Feature, Feature},
	BindingConnector:        {Feature, Feature},
	Succession:              {Feature, Feature},
	Flow:                    {Feature, Feature},
	SuccessionFlow:          {Feature, Feature},
	ConnectorAsUsage:        {Feature, Feature},
	BindingConnectorAsUsage: {Feature, Feature},
	SuccessionAsUsage:       {Feature, Feature},
	ConnectionUsage:         {Feature, Feature},
	InterfaceUsage:          {Feature, Feature},
	AllocationUsage:         {Feature, Feature},
	FlowUsage:               {Feature, Feature},
	SuccessionFlowUsage:     {Feature, Feature},
}

// RelationshipSourceType returns the kind that a valid source of k must be a
// subtype of. It reports false when k is not a relationship kind.
func (k Kind) RelationshipSourceType() (Kind, bool) {
	e, ok := k.endpoint()
	return e.source, ok
}

// RelationshipTargetType returns the kind that a valid target of k must be a
// subtype of. It reports false when k is not a relationship kind.
func (k Kind) RelationshipTargetType() (Kind, bool) {
	e, ok := k.endpoint()
	return e.target, ok
}

func (k Kind) endpoint() (endpoint, bool) {
	if !k.IsRelationship() {
		return endpoint{}, false
	}
	if e, ok := endpoints[k]; ok {
		return e, true
	}
	return universal, true
}
