package keys

// table maps the name of a repeated metadata element to the fields that
// identify one of its records.
var table = map[string]Spec{
	// Profile, PermissionSet, PermissionSetGroup
	"applicationVisibilities":       Field("application"),
	"categoryGroupVisibilities":     Field("dataCategoryGroup"),
	"classAccesses":                 Field("apexClass"),
	"customMetadataTypeAccesses":    Field("name"),
	"customPermissions":             Field("name"),
	"customSettingAccesses":         Field("name"),
	"externalDataSourceAccesses":    Field("externalDataSource"),
	"fieldPermissions":              Field("field"),
	"flowAccesses":                  Field("flow"),
	"layoutAssignments":             Joined(".", "layout", "recordType"),
	"loginFlows":                    Field("friendlyName"),
	"loginIpRanges":                 Joined("-", "startAddress", "endAddress"),
	"objectPermissions":             Field("object"),
	"pageAccesses":                  Field("apexPage"),
	"profileActionOverrides":        Joined(".", "actionName", "pageOrSobjectType", "recordType", "formFactor"),
	"recordTypeVisibilities":        Field("recordType"),
	"tabSettings":                   Field("tab"),
	"tabVisibilities":               Field("tab"),
	"userPermissions":               Field("name"),
	"permissionSets":                Field("permissionSet"),
	"mutingPermissionSets":          Field("permissionSet"),
	"servicePresenceStatusAccesses": Field("servicePresenceStatus"),

	// CustomObject and its children
	"actionOverrides":   Joined(".", "actionName", "formFactor"),
	"businessProcesses": Field("fullName"),
	"compactLayouts":    Field("fullName"),
	"fieldSets":         Field("fullName"),
	"fields":            Field("fullName"),
	"indexes":           Field("fullName"),
	"listViews":         Field("fullName"),
	"recordTypes":       Field("fullName"),
	"searchLayouts":     {OwnKeys: true},
	"sharingReasons":    Field("fullName"),
	"validationRules":   Field("fullName"),
	"webLinks":          Field("fullName"),
	"picklistValues":    Field("picklist"),
	"filters":           Joined(".", "field", "operation", "value"),
	"columns":           Field("field"),

	// picklists and value sets
	"customValue":   Field("fullName"),
	"value":         Field("fullName"),
	"values":        Field("fullName"),
	"valueSettings": Joined(".", "valueName", "controllingFieldValue"),
	"standardValue": Field("fullName"),

	// layouts
	"platformActionListItems": Field("actionName"),
	"quickActionListItems":    Field("quickActionName"),
	"relatedLists":            Field("relatedList"),
	"layoutItems":             Field("field"),

	// labels, translations, workflows, sharing
	"labels":               Field("fullName"),
	"alerts":               Field("fullName"),
	"fieldUpdates":         Field("fullName"),
	"outboundMessages":     Field("fullName"),
	"rules":                Field("fullName"),
	"tasks":                Field("fullName"),
	"sharingCriteriaRules": Field("fullName"),
	"sharingOwnerRules":    Field("fullName"),
	"assignmentRule":       Field("fullName"),
	"autoResponseRule":     Field("fullName"),
	"escalationRule":       Field("fullName"),
	"matchingRules":        Field("fullName"),
	"customTabs":           Field("name"),
	"customApplications":   Field("name"),
	"quickActions":         Field("name"),
	"reportTypes":          Field("name"),
	"flowDefinitions":      Field("fullName"),
	"workflowTimeTriggers": Joined(".", "timeLength", "workflowTimeTriggerUnit", "offsetFromField"),
}

// ordered lists the elements whose record order carries meaning in the
// document: picklist values render in document order, layout items are
// positional.
var ordered = map[string]bool{
	"customValue":             true,
	"value":                   true,
	"values":                  true,
	"standardValue":           true,
	"platformActionListItems": true,
	"quickActionListItems":    true,
	"relatedLists":            true,
	"layoutItems":             true,
	"columns":                 true,
	"filters":                 true,
}
