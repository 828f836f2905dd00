package i18n

var ParseCatalogExported = parseCatalog
