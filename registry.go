package qremis

import "github.com/reoring/qremis/schema"

// Record types of the default registry.
const (
	TypeRoot   schema.TypeName = "Root"
	TypeQremis schema.TypeName = "Qremis"

	TypeObject                          schema.TypeName = "Object"
	TypeObjectIdentifier                schema.TypeName = "ObjectIdentifier"
	TypeObjectExtension                 schema.TypeName = "ObjectExtension"
	TypePreservationLevel               schema.TypeName = "PreservationLevel"
	TypeSignificantProperties           schema.TypeName = "SignificantProperties"
	TypeSignificantPropertiesExtension  schema.TypeName = "SignificantPropertiesExtension"
	TypeObjectCharacteristics           schema.TypeName = "ObjectCharacteristics"
	TypeObjectCharacteristicsExtension  schema.TypeName = "ObjectCharacteristicsExtension"
	TypeFixity                          schema.TypeName = "Fixity"
	TypeFormat                          schema.TypeName = "Format"
	TypeFormatDesignation               schema.TypeName = "FormatDesignation"
	TypeFormatRegistry                  schema.TypeName = "FormatRegistry"
	TypeCreatingApplication             schema.TypeName = "CreatingApplication"
	TypeCreatingApplicationExtension    schema.TypeName = "CreatingApplicationExtension"
	TypeInhibitors                      schema.TypeName = "Inhibitors"
	TypeStorage                         schema.TypeName = "Storage"
	TypeContentLocation                 schema.TypeName = "ContentLocation"
	TypeSignatureInformation            schema.TypeName = "SignatureInformation"
	TypeSignatureInformationExtension   schema.TypeName = "SignatureInformationExtension"
	TypeSignature                       schema.TypeName = "Signature"
	TypeKeyInformation                  schema.TypeName = "KeyInformation"
	TypeEnvironmentFunction             schema.TypeName = "EnvironmentFunction"
	TypeEnvironmentDesignation          schema.TypeName = "EnvironmentDesignation"
	TypeEnvironmentDesignationExtension schema.TypeName = "EnvironmentDesignationExtension"
	TypeEnvironmentRegistry             schema.TypeName = "EnvironmentRegistry"
	TypeEnvironmentExtension            schema.TypeName = "EnvironmentExtension"
	TypeLinkingRelationships            schema.TypeName = "LinkingRelationships"
	TypeLinkingRelationshipIdentifier   schema.TypeName = "LinkingRelationshipIdentifier"

	TypeEvent                       schema.TypeName = "Event"
	TypeEventIdentifier             schema.TypeName = "EventIdentifier"
	TypeEventExtension              schema.TypeName = "EventExtension"
	TypeEventDetailInformation      schema.TypeName = "EventDetailInformation"
	TypeEventOutcomeInformation     schema.TypeName = "EventOutcomeInformation"
	TypeEventOutcomeDetail          schema.TypeName = "EventOutcomeDetail"
	TypeEventOutcomeDetailExtension schema.TypeName = "EventOutcomeDetailExtension"

	TypeAgent           schema.TypeName = "Agent"
	TypeAgentIdentifier schema.TypeName = "AgentIdentifier"

	TypeRights                             schema.TypeName = "Rights"
	TypeRightsIdentifier                   schema.TypeName = "RightsIdentifier"
	TypeRightsExtension                    schema.TypeName = "RightsExtension"
	TypeRightsStatement                    schema.TypeName = "RightsStatement"
	TypeRightsStatementIdentifier          schema.TypeName = "RightsStatementIdentifier"
	TypeRightsGranted                      schema.TypeName = "RightsGranted"
	TypeTermOfGrant                        schema.TypeName = "TermOfGrant"
	TypeTermOfRestriction                  schema.TypeName = "TermOfRestriction"
	TypeCopyrightInformation               schema.TypeName = "CopyrightInformation"
	TypeCopyrightDocumentationIdentifier   schema.TypeName = "CopyrightDocumentationIdentifier"
	TypeCopyrightApplicableDates           schema.TypeName = "CopyrightApplicableDates"
	TypeLicenseInformation                 schema.TypeName = "LicenseInformation"
	TypeLicenseDocumentationIdentifier     schema.TypeName = "LicenseDocumentationIdentifier"
	TypeLicenseApplicableDates             schema.TypeName = "LicenseApplicableDates"
	TypeStatuteInformation                 schema.TypeName = "StatuteInformation"
	TypeStatuteDocumentationIdentifier     schema.TypeName = "StatuteDocumentationIdentifier"
	TypeStatuteApplicableDates             schema.TypeName = "StatuteApplicableDates"
	TypeOtherRightsInformation             schema.TypeName = "OtherRightsInformation"
	TypeOtherRightsDocumentationIdentifier schema.TypeName = "OtherRightsDocumentationIdentifier"
	TypeOtherRightsApplicableDates         schema.TypeName = "OtherRightsApplicableDates"

	TypeRelationship            schema.TypeName = "Relationship"
	TypeRelationshipIdentifier  schema.TypeName = "RelationshipIdentifier"
	TypeRelationshipExtension   schema.TypeName = "RelationshipExtension"
	TypeLinkingObjectIdentifier schema.TypeName = "LinkingObjectIdentifier"
	TypeLinkingEventIdentifier  schema.TypeName = "LinkingEventIdentifier"
	TypeLinkingAgentIdentifier  schema.TypeName = "LinkingAgentIdentifier"
	TypeLinkingRightsIdentifier schema.TypeName = "LinkingRightsIdentifier"
)

var defaultRegistry = buildRegistry()

// DefaultRegistry returns the registry of every record type. It is built once
// at package initialization and never changes.
func DefaultRegistry() *schema.Registry { return defaultRegistry }

// identifier declares a {type, value} pair record, both mandatory.
func identifier(b *schema.Builder, name schema.TypeName, prefix string) {
	b.Type(name).
		Field(prefix + "Type").Mandatory().
		Field(prefix + "Value").Mandatory()
}

// dates declares an optional start/end date range record.
func dates(b *schema.Builder, name schema.TypeName, startMandatory bool) {
	s := b.Type(name).Field("startDate")
	if startMandatory {
		s.Mandatory()
	}
	s.Field("endDate")
}

func buildRegistry() *schema.Registry {
	b := schema.NewBuilder()

	// Placeholders for extension points; they declare no fields.
	for _, ext := range []schema.TypeName{
		TypeObjectExtension,
		TypeEnvironmentExtension,
		TypeEnvironmentDesignationExtension,
		TypeKeyInformation,
		TypeSignatureInformationExtension,
		TypeCreatingApplicationExtension,
		TypeObjectCharacteristicsExtension,
		TypeSignificantPropertiesExtension,
		TypeEventExtension,
		TypeEventOutcomeDetailExtension,
		TypeRightsExtension,
		TypeRelationshipExtension,
	} {
		b.Type(ext)
	}

	// Object
	identifier(b, TypeLinkingRelationshipIdentifier, "linkingRelationshipIdentifier")
	b.Type(TypeLinkingRelationships).
		Field("linkingRelationshipIdentifier").Of(TypeLinkingRelationshipIdentifier).Repeatable().Mandatory()
	b.Type(TypeEnvironmentRegistry).
		Field("environmentRegistryName").Mandatory().
		Field("environmentRegistryKey").Mandatory().
		Field("environmentRegistryRole")
	b.Type(TypeEnvironmentDesignation).
		Field("environmentName").Mandatory().
		Field("environmentVersion").
		Field("environmentOrigin").
		Field("environmentDesignationNote").Repeatable().
		Field("environmentDesignationExtension").Of(TypeEnvironmentDesignationExtension).Repeatable()
	identifier(b, TypeEnvironmentFunction, "environmentFunction")
	b.Type(TypeSignature).
		Field("signatureEncoding").Mandatory().
		Field("signer").
		Field("signatureMethod").
		Field("signatureValue").
		Field("signatureValidationRules").Mandatory().
		Field("signatureProperties").Repeatable().
		Field("keyInformation").Of(TypeKeyInformation)
	b.Type(TypeSignatureInformation).
		Field("signature").Of(TypeSignature).Repeatable().
		Field("signatureInformationExtension").Of(TypeSignatureInformationExtension).Repeatable()
	identifier(b, TypeContentLocation, "contentLocation")
	b.Type(TypeStorage).
		Field("contentLocation").Of(TypeContentLocation).
		Field("storageMedium")
	b.Type(TypeFixity).
		Field("messageDigestAlgorithm").Mandatory().
		Field("messageDigest").Mandatory().
		Field("messageDigestOriginator")
	b.Type(TypeFormatRegistry).
		Field("formatRegistryName").Mandatory().
		Field("formatRegistryKey").Mandatory().
		Field("formatRegistryRole")
	b.Type(TypeFormatDesignation).
		Field("formatName").Mandatory().
		Field("formatVersion")
	b.Type(TypeFormat).
		Field("formatDesignation").Of(TypeFormatDesignation).
		Field("formatRegistry").Of(TypeFormatRegistry).
		Field("formatNote").Repeatable()
	b.Type(TypeCreatingApplication).
		Field("creatingApplicationName").
		Field("creatingApplicationVersion").Mandatory().
		Field("dateCreatedByApplication").Mandatory().
		Field("creatingApplicationExtension").Of(TypeCreatingApplicationExtension).Repeatable()
	b.Type(TypeInhibitors).
		Field("inhibitorType").Mandatory().
		Field("inhibitorTarget").Repeatable().
		Field("inhibitorKey")
	b.Type(TypeObjectCharacteristics).
		Field("compositionLevel").
		Field("fixity").Of(TypeFixity).Repeatable().
		Field("size").
		Field("format").Of(TypeFormat).Repeatable().Mandatory().
		Field("creatingApplication").Of(TypeCreatingApplication).Repeatable().
		Field("inhibitors").Of(TypeInhibitors).Repeatable().
		Field("objectCharacteristicsExtension").Of(TypeObjectCharacteristicsExtension).Repeatable()
	b.Type(TypeSignificantProperties).
		Field("significantPropertiesType").
		Field("significantPropertiesValue").
		Field("significantPropertiesExtension").Of(TypeSignificantPropertiesExtension).Repeatable()
	b.Type(TypePreservationLevel).
		Field("preservationLevelType").
		Field("preservationLevelValue").Mandatory().
		Field("preservationLevelRole").
		Field("preservationLevelRationale").Repeatable().
		Field("preservationLevelDateAssigned")
	identifier(b, TypeObjectIdentifier, "objectIdentifier")
	b.Type(TypeObject).
		Field("objectIdentifier").Of(TypeObjectIdentifier).Repeatable().Mandatory().
		Field("objectCategory").Mandatory().
		Field("preservationLevel").Of(TypePreservationLevel).Repeatable().
		Field("significantProperties").Of(TypeSignificantProperties).Repeatable().
		Field("objectCharacteristics").Of(TypeObjectCharacteristics).Repeatable().Mandatory().
		Field("originalName").
		Field("storage").Of(TypeStorage).Repeatable().
		Field("signatureInformation").Of(TypeSignatureInformation).Repeatable().
		Field("environmentFunction").Of(TypeEnvironmentFunction).Repeatable().
		Field("environmentDesignation").Of(TypeEnvironmentDesignation).Repeatable().
		Field("environmentRegistry").Of(TypeEnvironmentRegistry).Repeatable().
		Field("environmentExtension").Of(TypeEnvironmentExtension).Repeatable().
		Field("linkingRelationships").Of(TypeLinkingRelationships).
		Field("objectExtension").Of(TypeObjectExtension).Repeatable()

	// Event
	b.Type(TypeEventDetailInformation).
		Field("eventDetail").
		Field("eventDetailExtension").Repeatable()
	b.Type(TypeEventOutcomeDetail).
		Field("eventOutcomeDetailNote").
		Field("eventOutcomeDetailExtension").Of(TypeEventOutcomeDetailExtension).Repeatable()
	b.Type(TypeEventOutcomeInformation).
		Field("eventOutcome").
		Field("eventOutcomeDetail").Of(TypeEventOutcomeDetail).Repeatable()
	identifier(b, TypeEventIdentifier, "eventIdentifier")
	b.Type(TypeEvent).
		Field("eventIdentifier").Of(TypeEventIdentifier).Repeatable().Mandatory().
		Field("eventType").Mandatory().
		Field("eventDateTime").Mandatory().
		Field("eventDetailInformation").Of(TypeEventDetailInformation).Repeatable().
		Field("eventOutcomeInformation").Of(TypeEventOutcomeInformation).Repeatable().
		Field("linkingRelationships").Of(TypeLinkingRelationships).
		Field("eventExtension").Of(TypeEventExtension).Repeatable()

	// Agent
	identifier(b, TypeAgentIdentifier, "agentIdentifier")
	b.Type(TypeAgent).
		Field("agentIdentifier").Of(TypeAgentIdentifier).Repeatable().Mandatory().
		Field("agentName").Repeatable().
		Field("agentType").
		Field("agentVersion").
		Field("agentNote").Repeatable().
		Field("linkingRelationships").Of(TypeLinkingRelationshipIdentifier)

	// Rights
	dates(b, TypeTermOfGrant, true)
	dates(b, TypeTermOfRestriction, true)
	b.Type(TypeRightsGranted).
		Field("act").Mandatory().
		Field("restriction").Repeatable().
		Field("termOfGrant").Of(TypeTermOfGrant).
		Field("termOfRestriction").Of(TypeTermOfRestriction).
		Field("rightsGrantedNote").Repeatable()
	dates(b, TypeOtherRightsApplicableDates, false)
	b.Type(TypeOtherRightsDocumentationIdentifier).
		Field("otherRightsDocumentationIdentifierType").Mandatory().
		Field("otherRightsDocumentationIdentifierValue").Mandatory().
		Field("otherRightsDocumentationRole")
	b.Type(TypeOtherRightsInformation).
		Field("otherRightsDocumentationIdentifier").Of(TypeOtherRightsDocumentationIdentifier).Repeatable().
		Field("otherRightsBasis").Mandatory().
		Field("otherRightsApplicableDates").Of(TypeOtherRightsApplicableDates).
		Field("otherRightsNote").Repeatable()
	dates(b, TypeStatuteApplicableDates, false)
	b.Type(TypeStatuteDocumentationIdentifier).
		Field("statuteDocumentationIdentifierType").Mandatory().
		Field("statuteDocumentationIdentifierValue").Mandatory().
		Field("statuteDocumentationIdentifierRole")
	b.Type(TypeStatuteInformation).
		Field("statuteJurisdiction").Mandatory().
		Field("statuteCitation").Mandatory().
		Field("statuteInformationDeterminationDate").Mandatory().
		Field("statuteNote").Repeatable().
		Field("statuteDocumentationIdentifier").Of(TypeStatuteDocumentationIdentifier).Repeatable().
		Field("statuteApplicableDates").Of(TypeStatuteApplicableDates)
	dates(b, TypeLicenseApplicableDates, false)
	b.Type(TypeLicenseDocumentationIdentifier).
		Field("licenseDocumentationIdentifierType").Mandatory().
		Field("licenseDocumentationIdentifierValue").Mandatory().
		Field("licenseDocumentationRole")
	b.Type(TypeLicenseInformation).
		Field("licenseDocumentationIdentifier").Of(TypeLicenseDocumentationIdentifier).Repeatable().
		Field("licenseTerms").
		Field("licenseNote").Repeatable().
		Field("licenseApplicableDates").Of(TypeLicenseApplicableDates)
	dates(b, TypeCopyrightApplicableDates, false)
	b.Type(TypeCopyrightDocumentationIdentifier).
		Field("copyrightDocumentationIdentifierType").Mandatory().
		Field("copyrightDocumentationIdentifierValue").Mandatory().
		Field("copyrightDocumentationRole").Repeatable()
	b.Type(TypeCopyrightInformation).
		Field("copyrightStatus").Mandatory().
		Field("copyrightJurisdiction").Mandatory().
		Field("copyrightStatusDeterminationDate").
		Field("copyrightNote").Repeatable().
		Field("copyrightDocumentationIdentifier").Of(TypeCopyrightDocumentationIdentifier).Repeatable().
		Field("copyrightApplicableDates").Of(TypeCopyrightApplicableDates)
	b.Type(TypeRightsStatementIdentifier).
		Field("rightsStatementIdentifierType").Mandatory().
		Field("rightsStatementIdentifierValue")
	b.Type(TypeRightsStatement).
		Field("rightsStatementIdentifier").Of(TypeRightsStatementIdentifier).Mandatory().
		Field("rightsBasis").Mandatory().
		Field("copyrightInformation").Of(TypeCopyrightInformation).
		Field("licenseInformation").Of(TypeLicenseInformation).
		Field("statuteInformation").Of(TypeStatuteInformation).
		Field("otherRightsInformation").Of(TypeOtherRightsInformation).
		Field("rightsGranted").Of(TypeRightsGranted).Repeatable()
	identifier(b, TypeRightsIdentifier, "rightsIdentifier")
	b.Type(TypeRights).
		Field("rightsIdentifier").Of(TypeRightsIdentifier).Repeatable().Mandatory().
		Field("rightsStatement").Of(TypeRightsStatement).Repeatable().
		Field("linkingRelationships").Of(TypeLinkingRelationships).
		Field("rightsExtension").Of(TypeRightsExtension).Repeatable()

	// Relationship
	identifier(b, TypeLinkingRightsIdentifier, "linkingRightsIdentifier")
	identifier(b, TypeLinkingAgentIdentifier, "linkingAgentIdentifier")
	identifier(b, TypeLinkingEventIdentifier, "linkingEventIdentifier")
	identifier(b, TypeLinkingObjectIdentifier, "linkingObjectIdentifier")
	identifier(b, TypeRelationshipIdentifier, "relationshipIdentifier")
	b.Type(TypeRelationship).
		Field("relationshipIdentifier").Of(TypeRelationshipIdentifier).Repeatable().Mandatory().
		Field("relationshipType").Mandatory().
		Field("relationshipSubType").Mandatory().
		Field("linkingObjectIdentifier").Of(TypeLinkingObjectIdentifier).Repeatable().
		Field("linkingEventIdentifier").Of(TypeLinkingEventIdentifier).Repeatable().
		Field("linkingAgentIdentifier").Of(TypeLinkingAgentIdentifier).Repeatable().
		Field("linkingRightsIdentifier").Of(TypeLinkingRightsIdentifier).Repeatable().
		Field("relationshipRole").
		Field("relationshipSequence").
		Field("linkingEnvironmentPurpose").Repeatable().
		Field("linkingEnvironmentCharacteristic").
		Field("relationshipNote").Repeatable().
		Field("relationshipExtension").Of(TypeRelationshipExtension).Repeatable()

	b.Type(TypeQremis).
		Field("object").Of(TypeObject).Repeatable().
		Field("event").Of(TypeEvent).Repeatable().
		Field("agent").Of(TypeAgent).Repeatable().
		Field("rights").Of(TypeRights).Repeatable().
		Field("relationship").Of(TypeRelationship).Repeatable()

	// Conceptual root: the entry point for DescribeSchema.
	b.Type(TypeRoot).
		Field("qremis").Of(TypeQremis).Mandatory()

	return b.MustBuild()
}
