package v1

// BasePath is the base path for all version 1 api routes.
const BasePath = "/api/v1/ums"
