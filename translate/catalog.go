package translate

// pt-BR messages, keyed by their en-US format.
var _pt_BR = map[string]string{
	// Console
	"=== MENU ===":              "=== MENU ===",
	"0 - Add":                   "0 - Soma",
	"1 - Subtract":              "1 - Subtração",
	"2 - Scalar multiply":       "2 - Multiplicação escalar",
	"3 - Matrix multiply":       "3 - Multiplicação matricial",
	"4 - Negate":                "4 - Matriz oposta",
	"Enter the operation: ":     "Digite a operação: ",
	"Initializing hardware...":  "Iniciando hardware...",
	"Sending data...":           "Enviando dados...",
	"Processing on the FPGA...": "Processando na FPGA...",
	"Matrix A":                  "Matriz A",
	"Matrix B":                  "Matriz B",
	"Result":                    "Resultado",
	"Overflow detected":         "Estouro detectado",
	"close: %v":                 "encerramento: %v",
	"invalid operation: %d":     "Operação inválida: %d",
	"invalid matrix size: %d":   "Tamanho de matriz inválido: %d",
	"invalid scalar: %d":        "Escalar inválido: %d",
	"operation input: %v":       "leitura da operação: %v",
	"invalid parameters":        "parâmetros inválidos",
	"hardware init failed":      "Erro ao iniciar hardware",
	"send failed":               "Erro no envio",
	"receive failed":            "Erro ao receber resultados",
	"hardware already open":     "hardware já aberto",
	"hardware not open":         "hardware não aberto",
	"no data sent":              "nenhum dado enviado",
	"job %v: %v":                "tarefa %v: %v",
	"job value %v: %v":          "valor da tarefa %v: %v",
	"invalid job value":         "valor de tarefa inválido",
}
