package lint

// catalog is the static rule table, one sorted slice per group.
// Entries are append-only across releases: renaming or removing a rule
// is handled by configuration deprecation, never here.
var catalog = []groupTable{
	{GroupA11y, []catalogEntry{
		{"noAccessKey", true, FixNone, langJSX},
		{"noAriaHiddenOnFocusable", true, FixNone, langJSX},
		{"noAriaUnsupportedElements", true, FixNone, langJSX},
		{"noAutofocus", true, FixNone, langJSX},
		{"noBlankTarget", true, FixNone, langJSX},
		{"noDistractingElements", true, FixNone, langJSX},
		{"noHeaderScope", true, FixNone, langJSX},
		{"noInteractiveElementToNoninteractiveRole", true, FixNone, langJSX},
		{"noNoninteractiveElementToInteractiveRole", true, FixNone, langJSX},
		{"noNoninteractiveTabindex", true, FixNone, langJSX},
		{"noPositiveTabindex", true, FixNone, langJSX},
		{"noRedundantAlt", true, FixNone, langJSX},
		{"noRedundantRoles", true, FixNone, langJSX},
		{"noSvgWithoutTitle", true, FixNone, langJSX},
		{"useAltText", true, FixNone, langJSX},
		{"useAnchorContent", true, FixNone, langJSX},
		{"useAriaActivedescendantWithTabindex", true, FixNone, langJSX},
		{"useAriaPropsForRole", true, FixNone, langJSX},
		{"useButtonType", true, FixNone, langJSX},
		{"useHeadingContent", true, FixNone, langJSX},
		{"useHtmlLang", true, FixNone, langJSX},
		{"useIframeTitle", true, FixNone, langJSX},
		{"useKeyWithClickEvents", true, FixNone, langJSX},
		{"useKeyWithMouseEvents", true, FixNone, langJSX},
		{"useMediaCaption", true, FixNone, langJSX},
		{"useValidAnchor", true, FixNone, langJSX},
		{"useValidAriaProps", true, FixNone, langJSX},
		{"useValidAriaRole", true, FixNone, langJSX},
		{"useValidAriaValues", true, FixNone, langJSX},
		{"useValidLang", true, FixNone, langJSX},
	}},
	{GroupComplexity, []catalogEntry{
		{"noBannedTypes", true, FixNone, langTS},
		{"noExcessiveCognitiveComplexity", false, FixNone, langJS},
		{"noExtraBooleanCast", true, FixUnsafe, langJS},
		{"noForEach", true, FixNone, langJS},
		{"noMultipleSpacesInRegularExpressionLiterals", true, FixUnsafe, langJS},
		{"noStaticOnlyClass", true, FixNone, langJS},
		{"noThisInStatic", true, FixNone, langJS},
		{"noUselessCatch", true, FixNone, langJS},
		{"noUselessConstructor", true, FixUnsafe, langJS},
		{"noUselessEmptyExport", true, FixSafe, langJS},
		{"noUselessFragments", true, FixUnsafe, langJSX},
		{"noUselessLabel", true, FixSafe, langJS},
		{"noUselessRename", true, FixSafe, langJS},
		{"noUselessSwitchCase", true, FixSafe, langJS},
		{"noUselessThisAlias", true, FixUnsafe, langJS},
		{"noUselessTypeConstraint", true, FixSafe, langTS},
		{"noVoid", false, FixNone, langJS},
		{"noWith", true, FixNone, langJS},
		{"useArrowFunction", true, FixUnsafe, langJS},
		{"useFlatMap", true, FixSafe, langJS},
		{"useLiteralKeys", true, FixUnsafe, langJS},
		{"useOptionalChain", true, FixUnsafe, langJS},
		{"useRegexLiterals", true, FixUnsafe, langJS},
		{"useSimpleNumberKeys", true, FixSafe, langJS},
		{"useSimplifiedLogicExpression", false, FixNone, langJS},
	}},
	{GroupCorrectness, []catalogEntry{
		{"noChildrenProp", true, FixNone, langJSX},
		{"noConstAssign", true, FixNone, langJS},
		{"noConstantCondition", true, FixNone, langJS},
		{"noConstructorReturn", true, FixNone, langJS},
		{"noEmptyCharacterClassInRegex", true, FixNone, langJS},
		{"noEmptyPattern", true, FixNone, langJS},
		{"noGlobalObjectCalls", true, FixNone, langJS},
		{"noInnerDeclarations", true, FixNone, langJS},
		{"noInvalidConstructorSuper", true, FixNone, langJS},
		{"noInvalidNewBuiltin", true, FixUnsafe, langJS},
		{"noNewSymbol", false, FixUnsafe, langJS},
		{"noNonoctalDecimalEscape", true, FixNone, langJS},
		{"noPrecisionLoss", true, FixNone, langJS},
		{"noRenderReturnValue", true, FixNone, langJSX},
		{"noSelfAssign", true, FixNone, langJS},
		{"noSetterReturn", true, FixNone, langJS},
		{"noStringCaseMismatch", true, FixNone, langJS},
		{"noSwitchDeclarations", true, FixNone, langJS},
		{"noUndeclaredVariables", false, FixNone, langJS},
		{"noUnnecessaryContinue", true, FixUnsafe, langJS},
		{"noUnreachable", true, FixNone, langJS},
		{"noUnreachableSuper", true, FixNone, langJS},
		{"noUnsafeFinally", true, FixNone, langJS},
		{"noUnsafeOptionalChaining", true, FixNone, langJS},
		{"noUnusedLabels", true, FixNone, langJS},
		{"noUnusedVariables", false, FixUnsafe, langJS},
		{"noVoidElementsWithChildren", true, FixNone, langJSX},
		{"noVoidTypeReturn", true, FixNone, langTS},
		{"useExhaustiveDependencies", true, FixNone, langJS},
		{"useHookAtTopLevel", false, FixNone, langJS},
		{"useIsNan", true, FixNone, langJS},
		{"useValidForDirection", true, FixNone, langJS},
		{"useYield", true, FixNone, langJS},
	}},
	{GroupNursery, []catalogEntry{
		{"noDuplicateJsonKeys", true, FixNone, langJSON},
		{"noEmptyBlockStatements", false, FixNone, langJS},
		{"noEmptyTypeParameters", true, FixNone, langTS},
		{"noFocusedTests", true, FixNone, langJS},
		{"noGlobalAssign", true, FixNone, langJS},
		{"noGlobalEval", true, FixNone, langJS},
		{"noInvalidUseBeforeDeclaration", false, FixNone, langJS},
		{"noMisleadingCharacterClass", false, FixNone, langJS},
		{"noNodejsModules", false, FixNone, langJS},
		{"noReExportAll", false, FixNone, langJS},
		{"noSkippedTests", false, FixNone, langJS},
		{"noThenProperty", true, FixNone, langJS},
		{"noUnusedImports", false, FixUnsafe, langJS},
		{"noUnusedPrivateClassMembers", false, FixNone, langJS},
		{"noUselessLoneBlockStatements", false, FixUnsafe, langJS},
		{"noUselessTernary", true, FixUnsafe, langJS},
		{"useAwait", true, FixNone, langJS},
		{"useConsistentArrayType", false, FixUnsafe, langTS},
		{"useExportType", true, FixSafe, langTS},
		{"useFilenamingConvention", false, FixNone, langJS},
		{"useForOf", false, FixUnsafe, langJS},
		{"useGroupedTypeImport", true, FixUnsafe, langTS},
		{"useImportRestrictions", false, FixNone, langJS},
		{"useImportType", true, FixSafe, langTS},
		{"useNodejsImportProtocol", false, FixSafe, langJS},
		{"useNumberNamespace", true, FixSafe, langJS},
		{"useShorthandFunctionType", false, FixUnsafe, langTS},
		{"useSortedClasses", false, FixNone, langJSX},
	}},
	{GroupPerformance, []catalogEntry{
		{"noAccumulatingSpread", true, FixNone, langJS},
		{"noDelete", true, FixUnsafe, langJS},
	}},
	{GroupSecurity, []catalogEntry{
		{"noDangerouslySetInnerHtml", true, FixNone, langJSX},
		{"noDangerouslySetInnerHtmlWithChildren", true, FixNone, langJSX},
	}},
	{GroupStyle, []catalogEntry{
		{"noArguments", true, FixUnsafe, langJS},
		{"noCommaOperator", true, FixNone, langJS},
		{"noDefaultExport", false, FixNone, langJS},
		{"noImplicitBoolean", false, FixUnsafe, langJS},
		{"noInferrableTypes", true, FixSafe, langTS},
		{"noNamespace", false, FixNone, langTS},
		{"noNegationElse", false, FixUnsafe, langJS},
		{"noNonNullAssertion", true, FixNone, langTS},
		{"noParameterAssign", true, FixNone, langJS},
		{"noParameterProperties", false, FixNone, langTS},
		{"noRestrictedGlobals", false, FixNone, langJS},
		{"noShoutyConstants", false, FixUnsafe, langJS},
		{"noUnusedTemplateLiteral", true, FixUnsafe, langJS},
		{"noUselessElse", true, FixUnsafe, langJS},
		{"noVar", true, FixUnsafe, langJS},
		{"useAsConstAssertion", true, FixUnsafe, langTS},
		{"useBlockStatements", false, FixUnsafe, langJS},
		{"useCollapsedElseIf", false, FixUnsafe, langJS},
		{"useConst", false, FixUnsafe, langJS},
		{"useDefaultParameterLast", true, FixUnsafe, langJS},
		{"useEnumInitializers", true, FixUnsafe, langTS},
		{"useExponentiationOperator", true, FixUnsafe, langJS},
		{"useFragmentSyntax", false, FixUnsafe, langJSX},
		{"useLiteralEnumMembers", true, FixNone, langTS},
		{"useNamingConvention", false, FixNone, langJS},
		{"useNumericLiterals", true, FixUnsafe, langJS},
		{"useSelfClosingElements", true, FixSafe, langJSX},
		{"useShorthandArrayType", false, FixSafe, langTS},
		{"useShorthandAssign", false, FixUnsafe, langJS},
		{"useSingleCaseStatement", false, FixUnsafe, langJS},
		{"useSingleVarDeclarator", true, FixUnsafe, langJS},
		{"useTemplate", true, FixUnsafe, langJS},
		{"useWhile", true, FixSafe, langJS},
	}},
	{GroupSuspicious, []catalogEntry{
		{"noApproximativeNumericConstant", false, FixUnsafe, langJS},
		{"noArrayIndexKey", true, FixNone, langJSX},
		{"noAssignInExpressions", true, FixNone, langJS},
		{"noAsyncPromiseExecutor", true, FixNone, langJS},
		{"noCatchAssign", true, FixNone, langJS},
		{"noClassAssign", true, FixNone, langJS},
		{"noCommentText", true, FixNone, langJSX},
		{"noCompareNegZero", true, FixSafe, langJS},
		{"noConfusingLabels", true, FixNone, langJS},
		{"noConfusingVoidType", true, FixNone, langTS},
		{"noConsoleLog", false, FixUnsafe, langJS},
		{"noConstEnum", true, FixUnsafe, langTS},
		{"noControlCharactersInRegex", true, FixNone, langJS},
		{"noDebugger", true, FixUnsafe, langJS},
		{"noDoubleEquals", true, FixUnsafe, langJS},
		{"noDuplicateCase", true, FixNone, langJS},
		{"noDuplicateClassMembers", true, FixNone, langJS},
		{"noDuplicateJsxProps", true, FixNone, langJSX},
		{"noDuplicateObjectKeys", true, FixNone, langJS},
		{"noDuplicateParameters", true, FixNone, langJS},
		{"noEmptyInterface", true, FixUnsafe, langTS},
		{"noExplicitAny", true, FixNone, langTS},
		{"noExtraNonNullAssertion", true, FixSafe, langTS},
		{"noFallthroughSwitchClause", true, FixNone, langJS},
		{"noFunctionAssign", true, FixNone, langJS},
		{"noGlobalIsFinite", true, FixUnsafe, langJS},
		{"noGlobalIsNan", true, FixUnsafe, langJS},
		{"noImplicitAnyLet", true, FixNone, langTS},
		{"noImportAssign", true, FixNone, langJS},
		{"noLabelVar", true, FixNone, langJS},
		{"noMisleadingInstantiator", true, FixNone, langTS},
		{"noMisrefactoredShorthandAssign", false, FixUnsafe, langJS},
		{"noPrototypeBuiltins", true, FixNone, langJS},
		{"noRedeclare", true, FixNone, langJS},
		{"noRedundantUseStrict", true, FixSafe, langJS},
		{"noSelfCompare", true, FixNone, langJS},
		{"noShadowRestrictedNames", true, FixNone, langJS},
		{"noSparseArray", true, FixUnsafe, langJS},
		{"noUnsafeDeclarationMerging", true, FixNone, langTS},
		{"noUnsafeNegation", true, FixNone, langJS},
		{"useDefaultSwitchClauseLast", true, FixNone, langJS},
		{"useGetterReturn", true, FixNone, langJS},
		{"useIsArray", true, FixUnsafe, langJS},
		{"useNamespaceKeyword", true, FixUnsafe, langTS},
		{"useValidTypeof", true, FixNone, langJS},
	}},
}
